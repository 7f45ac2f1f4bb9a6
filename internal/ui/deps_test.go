package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tlpui/internal/application/usecase"
	"github.com/bnema/tlpui/internal/infrastructure/config"
)

func TestDependencies_Validate(t *testing.T) {
	full := func() *Dependencies {
		return &Dependencies{
			Ctx:    context.Background(),
			Config: config.DefaultConfig(),
			Path:   "/etc/tlp.conf",
			LoadUC: usecase.NewLoadConfigUseCase(nil, nil),
			SaveUC: usecase.NewSaveConfigUseCase(nil, nil),
		}
	}

	require.NoError(t, full().Validate())

	tests := []struct {
		name   string
		mutate func(*Dependencies)
		want   string
	}{
		{name: "no context", mutate: func(d *Dependencies) { d.Ctx = nil }, want: "Ctx"},
		{name: "no config", mutate: func(d *Dependencies) { d.Config = nil }, want: "Config"},
		{name: "no path", mutate: func(d *Dependencies) { d.Path = "" }, want: "Path"},
		{name: "no save", mutate: func(d *Dependencies) { d.SaveUC = nil }, want: "SaveUC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := full()
			tt.mutate(deps)

			err := deps.Validate()
			var depErr DependencyError
			require.ErrorAs(t, err, &depErr)
			assert.Equal(t, tt.want, depErr.Name)
		})
	}
}
