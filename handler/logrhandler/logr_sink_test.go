package logrhandler

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/internal/handlertest"
)

func TestSink_Info(t *testing.T) {
	rec := &handlertest.Recorder{}
	log := logr.New(NewSink(rec, core.InfoLevel)).WithName("ctrl").WithValues("ns", "default")

	log.Info("reconciled", "object", "pod-1", "attempts", 3)

	got := rec.Records()
	require.Len(t, got, 1)
	assert.Equal(t, "ctrl: reconciled ns=default object=pod-1 attempts=3", got[0].Message)
	assert.Equal(t, core.InfoLevel, got[0].Level)
	assert.Equal(t, "logr_sink_test.go", filepath.Base(got[0].File))
	assert.NotZero(t, got[0].Line)
}

func TestSink_Error(t *testing.T) {
	rec := &handlertest.Recorder{}
	log := logr.New(NewSink(rec, core.TraceLevel))

	log.Error(errors.New("conflict"), "update failed", "dangling")

	got := rec.Records()
	require.Len(t, got, 1)
	assert.Equal(t, "update failed error=conflict dangling=<missing>", got[0].Message)
	assert.Equal(t, core.ErrorLevel, got[0].Level)
}

func TestSink_Verbosity(t *testing.T) {
	rec := &handlertest.Recorder{}
	log := logr.New(NewSink(rec, core.DebugLevel))

	log.Info("v0")
	log.V(1).Info("v1")
	log.V(2).Info("v2 hidden")

	assert.Equal(t, []string{"v0", "v1"}, rec.Messages())
}

func TestSink_Disabled(t *testing.T) {
	rec := &handlertest.Recorder{}
	log := logr.New(NewSink(rec, core.DisabledLevel))

	log.Info("nothing")
	log.Error(errors.New("x"), "nothing either")

	assert.Empty(t, rec.Records())
	assert.Zero(t, rec.Stats().SubmittedTotal)
}

func TestSink_NameNesting(t *testing.T) {
	rec := &handlertest.Recorder{}
	log := logr.New(NewSink(rec, core.InfoLevel)).WithName("a").WithName("b")

	log.Info("hi")

	assert.Equal(t, []string{"a/b: hi"}, rec.Messages())
}
