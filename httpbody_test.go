// SPDX-License-Identifier: GPL-3.0-or-later

package docq

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reading emits httpBodyStreamStart once and closing afterwards emits
// httpBodyStreamDone.
func TestHTTPBodyWrapEvents(t *testing.T) {
	logger, records := newCapturingLogger()
	body := httpBodyWrap(
		io.NopCloser(strings.NewReader("payload")),
		DefaultErrClassifier,
		"https://example.com/",
		logger,
		time.Now,
	)

	_, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, body.Close())

	require.Len(t, *records, 2)
	assert.Equal(t, "httpBodyStreamStart", (*records)[0].Message)
	assert.Equal(t, "httpBodyStreamDone", (*records)[1].Message)
}

// Closing without reading emits no body stream events and Close keeps
// "once" semantics.
func TestHTTPBodyWrapCloseWithoutRead(t *testing.T) {
	logger, records := newCapturingLogger()
	body := httpBodyWrap(
		io.NopCloser(strings.NewReader("payload")),
		DefaultErrClassifier,
		"https://example.com/",
		logger,
		time.Now,
	)

	require.NoError(t, body.Close())
	require.NoError(t, body.Close())

	assert.Empty(t, *records)
}
