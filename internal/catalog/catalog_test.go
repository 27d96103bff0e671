package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"volunteerHub/internal/catalog"
	"volunteerHub/internal/catalog/mocks"
	"volunteerHub/internal/lib/logger/handlers/slogdiscard"
	"volunteerHub/internal/models"
)

var seed = []models.Category{
	{ID: 2, Name: "Education"},
	{ID: 1, Name: "Environment"},
}

func TestCatalogSeed(t *testing.T) {
	t.Parallel()

	c := catalog.New(slogdiscard.NewDiscardLogger(), mocks.NewSource(t), seed)

	assert.True(t, c.Seeded())
	assert.Equal(t, []models.Category{{ID: 1, Name: "Environment"}, {ID: 2, Name: "Education"}}, c.All())

	cat, ok := c.ByName("  education ")
	require.True(t, ok)
	assert.Equal(t, int64(2), cat.ID)

	_, ok = c.ByID(9)
	assert.False(t, ok)
}

func TestCatalogRefresh(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		mockSetup  func(src *mocks.Source)
		wantErr    bool
		wantSeeded bool
		wantLen    int
	}{
		{
			name: "Backend serves categories",
			mockSetup: func(src *mocks.Source) {
				src.On("ListCategories", mock.Anything).Return([]models.Category{
					{ID: 10, Name: "Health"},
					{ID: 11, Name: "Community"},
					{ID: 12, Name: "Charity"},
				}, nil)
			},
			wantSeeded: false,
			wantLen:    3,
		},
		{
			name: "Backend fails",
			mockSetup: func(src *mocks.Source) {
				src.On("ListCategories", mock.Anything).Return(nil, errors.New("404"))
			},
			wantErr:    true,
			wantSeeded: true,
			wantLen:    2,
		},
		{
			name: "Backend returns nothing",
			mockSetup: func(src *mocks.Source) {
				src.On("ListCategories", mock.Anything).Return([]models.Category{}, nil)
			},
			wantSeeded: true,
			wantLen:    2,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src := mocks.NewSource(t)
			tc.mockSetup(src)

			c := catalog.New(slogdiscard.NewDiscardLogger(), src, seed)

			err := c.Refresh(context.Background())
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tc.wantSeeded, c.Seeded())
			assert.Len(t, c.All(), tc.wantLen)
		})
	}
}

func TestCatalogAllReturnsCopy(t *testing.T) {
	t.Parallel()

	c := catalog.New(slogdiscard.NewDiscardLogger(), mocks.NewSource(t), seed)

	all := c.All()
	all[0].Name = "changed"

	cat, ok := c.ByID(1)
	require.True(t, ok)
	assert.Equal(t, "Environment", cat.Name)
}
