//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAttrs() catalog.Attributes {
	return catalog.Attributes{
		Name:            "Cut & Style",
		PriceCents:      4500,
		DurationMinutes: 60,
		Active:          true,
	}
}

func TestNewService(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*catalog.Attributes)
		errIs  error
	}{
		{name: "valid", mutate: func(*catalog.Attributes) {}},
		{name: "blank name", mutate: func(a *catalog.Attributes) { a.Name = "  " }, errIs: catalog.ErrInvalidName},
		{name: "negative price", mutate: func(a *catalog.Attributes) { a.PriceCents = -1 }, errIs: catalog.ErrInvalidPrice},
		{name: "zero duration", mutate: func(a *catalog.Attributes) { a.DurationMinutes = 0 }, errIs: catalog.ErrInvalidDuration},
		{name: "too long", mutate: func(a *catalog.Attributes) { a.DurationMinutes = 721 }, errIs: catalog.ErrInvalidDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := validAttrs()
			tt.mutate(&attrs)
			svc, err := catalog.NewService(attrs)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, time.Hour, svc.Duration())
			assert.True(t, svc.IsActive())
		})
	}
}

func TestService_Update(t *testing.T) {
	svc, err := catalog.NewService(validAttrs())
	require.NoError(t, err)

	attrs := svc.Attributes()
	attrs.Active = false
	attrs.DurationMinutes = 90
	require.NoError(t, svc.Update(attrs))
	assert.False(t, svc.IsActive())
	assert.Equal(t, 90*time.Minute, svc.Duration())

	attrs.Name = ""
	assert.ErrorIs(t, svc.Update(attrs), catalog.ErrInvalidName)
	assert.Equal(t, "Cut & Style", svc.Name())
}
