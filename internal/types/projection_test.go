package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowScopeJobScoped(t *testing.T) {
	scope := JobScoped("a1", "j1")

	appID, ok := scope.ApplicationID()
	assert.True(t, ok)
	assert.Equal(t, "a1", appID)

	jobID, ok := scope.JobID()
	assert.True(t, ok)
	assert.Equal(t, "j1", jobID)
	assert.False(t, scope.IsPool())
}

func TestRowScopePoolScoped(t *testing.T) {
	scope := PoolScoped()

	appID, ok := scope.ApplicationID()
	assert.False(t, ok)
	assert.Empty(t, appID)

	jobID, ok := scope.JobID()
	assert.False(t, ok)
	assert.Empty(t, jobID)
	assert.True(t, scope.IsPool())
}

func TestApplicationCandidateMarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		scope     RowScope
		wantAppID string
		wantJobID string
	}{
		{
			name:      "job scoped row carries ids",
			scope:     JobScoped("a7", "j2"),
			wantAppID: "a7",
			wantJobID: "j2",
		},
		{
			name:      "pool row serializes empty application id",
			scope:     PoolScoped(),
			wantAppID: "",
			wantJobID: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := ApplicationCandidate{
				Candidate: Candidate{ID: "c1", Name: "Alice Johnson"},
				Scope:     tt.scope,
				Status:    StatusTalentPool,
			}

			data, err := json.Marshal(row)
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, json.Unmarshal(data, &decoded))

			appID, present := decoded["applicationId"]
			assert.True(t, present, "applicationId must always be on the wire")
			assert.Equal(t, tt.wantAppID, appID)

			if tt.wantJobID == "" {
				assert.NotContains(t, decoded, "jobId")
			} else {
				assert.Equal(t, tt.wantJobID, decoded["jobId"])
			}
		})
	}
}
