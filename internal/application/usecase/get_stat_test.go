package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tlpui/internal/application/port/mocks"
	"github.com/bnema/tlpui/internal/application/usecase"
	"github.com/bnema/tlpui/internal/domain/entity"
)

func statReport() *entity.StatReport {
	return &entity.StatReport{
		Command: "tlp-stat -s",
		Sections: []entity.StatSection{
			{Title: "System Info", Lines: []string{"System = LENOVO"}},
			{Title: "TLP Status", Lines: []string{"State = enabled"}},
			{Title: "Battery Status", Lines: []string{"BAT0/energy_now = 41230 [mWh]"}},
		},
	}
}

func TestGetStatUseCase_Execute(t *testing.T) {
	provider := mocks.NewMockStatProvider(t)
	provider.EXPECT().Fetch(mock.Anything).Return(statReport(), nil)

	out, err := usecase.NewGetStatUseCase(provider).Execute(testContext(), usecase.GetStatInput{})
	require.NoError(t, err)
	assert.Len(t, out.Report.Sections, 3)
}

func TestGetStatUseCase_SectionFilter(t *testing.T) {
	provider := mocks.NewMockStatProvider(t)
	report := statReport()
	provider.EXPECT().Fetch(mock.Anything).Return(report, nil)

	out, err := usecase.NewGetStatUseCase(provider).Execute(testContext(), usecase.GetStatInput{Section: "status"})
	require.NoError(t, err)
	require.Len(t, out.Report.Sections, 2)
	assert.Equal(t, "TLP Status", out.Report.Sections[0].Title)
	assert.Equal(t, "Battery Status", out.Report.Sections[1].Title)
	assert.Len(t, report.Sections, 3, "original report is not modified")
}

func TestGetStatUseCase_Unavailable(t *testing.T) {
	provider := mocks.NewMockStatProvider(t)
	provider.EXPECT().Fetch(mock.Anything).Return(nil, entity.ErrStatUnavailable)

	_, err := usecase.NewGetStatUseCase(provider).Execute(testContext(), usecase.GetStatInput{})
	assert.ErrorIs(t, err, entity.ErrStatUnavailable)
}
