package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSetsTimeouts(t *testing.T) {
	handler := http.NotFoundHandler()

	srv := New(":0", handler)

	assert.Equal(t, ":0", srv.Addr)
	assert.NotNil(t, srv.Handler)
	assert.Equal(t, readHeaderTimeout, srv.ReadHeaderTimeout)
	assert.Equal(t, writeTimeout, srv.WriteTimeout)
	assert.Positive(t, srv.IdleTimeout)
}
