package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  time.Time
		zero  bool
	}{
		{
			name:  "Zone-less seconds",
			input: `"2025-12-01T09:00:00"`,
			want:  time.Date(2025, 12, 1, 9, 0, 0, 0, time.Local),
		},
		{
			name:  "Zone-less minutes",
			input: `"2025-12-01T09:00"`,
			want:  time.Date(2025, 12, 1, 9, 0, 0, 0, time.Local),
		},
		{
			name:  "RFC 3339",
			input: `"2025-12-01T09:00:00Z"`,
			want:  time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "Null",
			input: `null`,
			zero:  true,
		},
		{
			name:  "Empty string",
			input: `""`,
			zero:  true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tc.input), &ts))

			if tc.zero {
				assert.True(t, ts.IsZero())
				return
			}

			assert.True(t, tc.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	t.Parallel()

	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"tomorrow"`), &ts))
}

func TestTimestampMarshal(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(NewTimestamp(time.Date(2025, 12, 1, 9, 30, 0, 0, time.Local)))
	require.NoError(t, err)
	assert.Equal(t, `"2025-12-01T09:30:00"`, string(b))

	b, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}

func TestRoleUnmarshal(t *testing.T) {
	t.Parallel()

	var byID, byRoleID User

	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"role":{"id":2,"name":"ROLE_MANAGER"}}`), &byID))
	require.NoError(t, json.Unmarshal([]byte(`{"id":8,"role":{"roleId":3,"name":"ROLE_ADMIN"}}`), &byRoleID))

	assert.Equal(t, Role{ID: 2, Name: "ROLE_MANAGER"}, byID.Role)
	assert.Equal(t, Role{ID: 3, Name: "ROLE_ADMIN"}, byRoleID.Role)
}

func TestCategoryUnmarshal(t *testing.T) {
	t.Parallel()

	var cats []Category
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"name":"Environment"},{"id":2,"categoryName":"Education"}]`), &cats))

	assert.Equal(t, []Category{{ID: 1, Name: "Environment"}, {ID: 2, Name: "Education"}}, cats)
}

func TestEventFullAddress(t *testing.T) {
	t.Parallel()

	e := Event{Address: "12 Tran Hung Dao", Ward: " ", District: "District 1", City: "Ho Chi Minh City"}
	assert.Equal(t, "12 Tran Hung Dao, District 1, Ho Chi Minh City", e.FullAddress())
	assert.Equal(t, "", Event{}.FullAddress())
}

func TestEventFilterValues(t *testing.T) {
	t.Parallel()

	f := EventFilter{City: "Hanoi", Status: "APPROVED", Page: 2, Size: 12, Sort: "startAt,asc"}

	assert.Equal(t, "city=Hanoi&page=2&size=12&sort=startAt%2Casc&status=APPROVED", f.Values().Encode())
	assert.Empty(t, EventFilter{}.Values())
}

func TestPage(t *testing.T) {
	t.Parallel()

	p := Page[Event]{Number: 0, TotalPages: 3}
	assert.True(t, p.Empty())
	assert.True(t, p.HasNext())
	assert.False(t, p.HasPrev())

	p.Number = 2
	assert.False(t, p.HasNext())
	assert.True(t, p.HasPrev())
}

func TestStatusBadges(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Badge{Label: "Approved", Variant: "default"}, EventStatusApproved.Badge())
	assert.Equal(t, Badge{Label: "DRAFT", Variant: "outline"}, EventStatus("DRAFT").Badge())
	assert.Equal(t, Badge{Label: "Completed", Variant: "secondary"}, RegistrationCompleted.Badge())
}

func TestParseActions(t *testing.T) {
	t.Parallel()

	a, ok := ParseRegistrationAction("COMPLETE")
	assert.True(t, ok)
	assert.Equal(t, RegistrationComplete, a)

	_, ok = ParseRegistrationAction("DELETE")
	assert.False(t, ok)

	c, ok := ParseCloseAction("CANCEL")
	assert.True(t, ok)
	assert.Equal(t, CloseCancel, c)

	_, ok = ParseEventReviewAction("approve")
	assert.False(t, ok)
}
