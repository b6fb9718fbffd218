package editor_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	editor "github.com/graph-gophers/graphql-editor"
	"github.com/graph-gophers/graphql-editor/ast"
	"github.com/graph-gophers/graphql-editor/trace/opentracing"
	ot "github.com/opentracing/opentracing-go"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"github.com/uber/jaeger-client-go/log"
)

func TestJaegerTracing(t *testing.T) {
	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		t.Skipf("skipping test; Could not initialize jaeger: %s", err)
		return
	}
	queryAPI := os.Getenv("JAEGER_QUERY_ENDPOINT")
	if queryAPI == "" {
		t.Skipf("skipping test; JAEGER_QUERY_ENDPOINT env not defined.")
		return
	}

	svcName := t.Name() + "-" + ksuid.New().String()
	queryURL := fmt.Sprintf(
		"%s?lookback=1h&limit=10&service=%s",
		queryAPI,
		svcName,
	)

	cfg.ServiceName = svcName
	cfg.Sampler.Type = jaeger.SamplerTypeConst
	cfg.Sampler.Param = 1
	cfg.Reporter.LogSpans = true

	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(log.StdLogger))
	if err != nil {
		t.Skipf("skipping test; Could not initialize jaeger: %s", err)
		return
	}
	ot.SetGlobalTracer(tracer)
	defer ot.SetGlobalTracer(ot.NoopTracer{})

	// No traces should be in the system yet..
	assertTraceCount(t, queryURL, 0)

	c := editor.NewController(editor.Tracer(opentracing.Tracer{}))
	require.NoError(t, c.LoadGraphQLAndLibraries("type Query", ""))
	c.AddNode(ast.ScalarTypeDefinition, "Date")
	require.NoError(t, closer.Close())

	time.Sleep(1 * time.Second)
	assertTraceCount(t, queryURL, 2)
}

func assertTraceCount(t *testing.T, queryURL string, count int) {
	data := map[string]interface{}{}
	httpGetJSON(t, queryURL, &data)
	datas, _ := data["data"].([]interface{})
	assert.Equal(t, count, len(datas))
}

func httpGetJSON(t *testing.T, url string, target interface{}) {
	req, err := http.NewRequest("GET", url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, target))
}
