package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercore/internal/calibration"
	"github.com/lox/pokercore/internal/config"
	"github.com/lox/pokercore/internal/engine"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	cfg := config.DefaultRuntimeConfig()
	manifest := calibration.SeedManifest{
		Practice: []calibration.ManifestEntry{
			{Tier: "easy", Seeds: []uint64{1, 2, 3}},
		},
	}
	srv := NewServer(zerolog.Nop(), cfg, manifest)
	srv.ensureRoutes()
	ts := httptest.NewServer(srv.mux)
	t.Cleanup(ts.Close)
	return srv, ts
}

func TestHandleStartAssignsSessionAndReturnsPublicState(t *testing.T) {
	_, ts := newTestServer(t)

	body := strings.NewReader(`{"mode":"practice","tier":"easy"}`)
	resp, err := http.Post(ts.URL+"/game/start", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out startResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.GameID)
	require.Len(t, out.PublicState.Hand, 7)
	require.Equal(t, "limited", out.HintPolicy.Policy)
}

func TestHandleStartWithExplicitSeedIsDeterministic(t *testing.T) {
	_, ts := newTestServer(t)

	payload := `{"mode":"practice","tier":"easy","seed":42}`
	resp1, err := http.Post(ts.URL+"/game/start", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp1.Body.Close()
	resp2, err := http.Post(ts.URL+"/game/start", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp2.Body.Close()

	var out1, out2 startResponse
	require.NoError(t, json.NewDecoder(resp1.Body).Decode(&out1))
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&out2))
	require.Equal(t, out1.PublicState.Hand, out2.PublicState.Hand)
}

func TestHandleStepPlaysAHand(t *testing.T) {
	_, ts := newTestServer(t)

	startResp, err := http.Post(ts.URL+"/game/start", "application/json",
		strings.NewReader(`{"mode":"practice","tier":"easy","seed":7}`))
	require.NoError(t, err)
	defer startResp.Body.Close()
	var started startResponse
	require.NoError(t, json.NewDecoder(startResp.Body).Decode(&started))

	step := stepRequest{
		GameID: started.GameID,
		Action: actionDTO{Type: "PLAY", SelectedIndices: []int{0, 1, 2, 3, 4}},
	}
	buf, err := json.Marshal(step)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/game/step", "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out stepResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.LessOrEqual(t, len(out.PublicState.Hand), 7)
}

func TestHandleStepUnknownSessionIsUnprocessable(t *testing.T) {
	_, ts := newTestServer(t)

	step := stepRequest{GameID: "does-not-exist", Action: actionDTO{Type: "PLAY", SelectedIndices: []int{0}}}
	buf, _ := json.Marshal(step)
	resp, err := http.Post(ts.URL+"/game/step", "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandleAITraceReturnsOrderUnknownTrace(t *testing.T) {
	_, ts := newTestServer(t)

	startResp, err := http.Post(ts.URL+"/game/start", "application/json",
		strings.NewReader(`{"mode":"practice","tier":"easy","seed":9}`))
	require.NoError(t, err)
	defer startResp.Body.Close()
	var started startResponse
	require.NoError(t, json.NewDecoder(startResp.Body).Decode(&started))

	resp, err := http.Get(ts.URL + "/game/" + started.GameID + "/ai_trace")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out traceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, "order_unknown", out.InfoSet)
	require.NotEmpty(t, out.Steps)
}

func TestHandleAITraceExhaustsHintBudget(t *testing.T) {
	srv, ts := newTestServer(t)

	startResp, err := http.Post(ts.URL+"/game/start", "application/json",
		strings.NewReader(`{"mode":"practice","tier":"easy","seed":13}`))
	require.NoError(t, err)
	defer startResp.Body.Close()
	var started startResponse
	require.NoError(t, json.NewDecoder(startResp.Body).Decode(&started))

	traceURL := ts.URL + "/game/" + started.GameID + "/ai_trace"
	budget := srv.cfg.Server.HintBudget
	for i := 0; i < budget; i++ {
		resp, err := http.Get(traceURL)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err := http.Get(traceURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestResolveSeedUsesManifestTargetScoreForExplicitChallengeSeed(t *testing.T) {
	cfg := config.DefaultRuntimeConfig()
	target := 42
	manifest := calibration.SeedManifest{
		Challenge: []calibration.ManifestEntry{
			{Tier: "hard", TargetScore: &target, Seeds: []uint64{7}},
		},
	}
	srv := NewServer(zerolog.Nop(), cfg, manifest)

	explicit := uint64(999)
	seed, targetScore, err := srv.resolveSeed(engine.Challenge, "hard", &explicit)

	require.NoError(t, err)
	require.Equal(t, explicit, seed)
	require.NotNil(t, targetScore)
	require.Equal(t, target, *targetScore)
}

func TestHandleEventsStreamsBacklogAndLiveEvents(t *testing.T) {
	_, ts := newTestServer(t)

	startResp, err := http.Post(ts.URL+"/game/start", "application/json",
		strings.NewReader(`{"mode":"practice","tier":"easy","seed":5}`))
	require.NoError(t, err)
	defer startResp.Body.Close()
	var started startResponse
	require.NoError(t, json.NewDecoder(startResp.Body).Decode(&started))

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/game/" + started.GameID + "/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var first eventDTO
	require.NoError(t, conn.ReadJSON(&first))
	require.NotEmpty(t, first.Type)
}

func TestHandleJumpRebuildsHistoryAndDecrementsBudget(t *testing.T) {
	srv, ts := newTestServer(t)

	startResp, err := http.Post(ts.URL+"/game/start", "application/json",
		strings.NewReader(`{"mode":"practice","tier":"easy","seed":11}`))
	require.NoError(t, err)
	defer startResp.Body.Close()
	var started startResponse
	require.NoError(t, json.NewDecoder(startResp.Body).Decode(&started))

	jump := jumpRequest{GameID: started.GameID, K: 0}
	buf, _ := json.Marshal(jump)
	resp, err := http.Post(ts.URL+"/game/jump", "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out jumpResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, started.PublicState.Hand, out.PublicState.Hand)

	sess, ok := srv.sessions.get(started.GameID)
	require.True(t, ok)
	require.Equal(t, srv.cfg.Server.JumpBudget-1, sess.jumpRemaining)
}

func TestHandleHealth(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
