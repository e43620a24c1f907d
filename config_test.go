// SPDX-License-Identifier: GPL-3.0-or-later

package docq

import (
	"context"
	"testing"

	"github.com/bassosimone/errclass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	require.NotNil(t, cfg)

	// Endpoint should be the well-known production service root
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)

	// Secret should default to none
	assert.Equal(t, "", cfg.Secret)

	// HTTPClient should be left nil for the transport to build its own
	assert.Nil(t, cfg.HTTPClient)

	// ErrClassifier should be DefaultErrClassifier
	assert.Equal(t, errclass.ETIMEDOUT, cfg.ErrClassifier.Classify(context.DeadlineExceeded))

	// TimeNow should be set and return a valid time
	now := cfg.TimeNow()
	assert.False(t, now.IsZero())
}
