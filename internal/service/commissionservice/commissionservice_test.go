package commissionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T, loc *time.Location) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo, loc), repo
}

func TestRecord(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)

	tests := []struct {
		name          string
		loc           *time.Location
		stake         float64
		at            time.Time
		expectedDay   time.Time
		expectedStake float64
		repoErr       error
	}{
		{
			name:          "Four percent of the stake",
			loc:           time.UTC,
			stake:         25,
			at:            time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			expectedDay:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			expectedStake: 25,
		},
		{
			name:          "Small stake is not rounded away",
			loc:           time.UTC,
			stake:         0.10,
			at:            time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			expectedDay:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			expectedStake: 0.1,
		},
		{
			name:          "Stake rounds to cents",
			loc:           time.UTC,
			stake:         0.376,
			at:            time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			expectedDay:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			expectedStake: 0.38,
		},
		{
			name:          "Business day follows the configured zone",
			loc:           kolkata,
			stake:         50,
			at:            time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC),
			expectedDay:   time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			expectedStake: 50,
		},
		{
			name:          "Repository failure",
			loc:           time.UTC,
			stake:         25,
			at:            time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			expectedDay:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			expectedStake: 25,
			repoErr:       errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t, tt.loc)
			repo.EXPECT().Add(gomock.Any(), 3, tt.expectedDay, tt.expectedStake, 0.04).Return(tt.repoErr)

			err := service.Record(context.Background(), 3, tt.stake, tt.at)
			assert.Equal(t, tt.repoErr, err)
		})
	}
}

func TestSummaries(t *testing.T) {
	service, repo := NewMock(t, nil)
	from := time.Date(2024, 5, 3, 15, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	rows := []domain.CommissionSummary{{UserID: 3, TotalBets: 100, TotalCommission: 4}}

	repo.EXPECT().List(gomock.Any(), 3,
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
	).Return(rows, nil)

	result, err := service.Summaries(context.Background(), 3, from, to)
	require.NoError(t, err)
	assert.Equal(t, rows, result)

	repo.EXPECT().List(gomock.Any(), 3, gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
	_, err = service.Summaries(context.Background(), 3, from, to)
	assert.Error(t, err)
}
