package domain_test

import (
	"encoding/json"
	"testing"

	"bloodlink/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestParseBloodType(t *testing.T) {
	for _, bt := range domain.BloodTypes {
		parsed, err := domain.ParseBloodType(string(bt))
		require.NoError(t, err)
		require.Equal(t, bt, parsed)
	}

	for _, raw := range []string{"", "o+", "A", "AB", "C+", "O +"} {
		_, err := domain.ParseBloodType(raw)
		require.Error(t, err, "expected %q to be rejected", raw)
	}
}

func TestParseUrgency(t *testing.T) {
	for _, u := range []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"} {
		parsed, err := domain.ParseUrgency(u)
		require.NoError(t, err)
		require.Equal(t, domain.Urgency(u), parsed)
	}

	_, err := domain.ParseUrgency("urgent")
	require.Error(t, err)
}

func TestParseRequestStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "FULFILLED", "CANCELLED"} {
		parsed, ok := domain.ParseRequestStatus(s)
		require.True(t, ok)
		require.Equal(t, domain.RequestStatus(s), parsed)
	}

	_, ok := domain.ParseRequestStatus("DONE")
	require.False(t, ok)
}

func TestRequestStatus_IsTerminal(t *testing.T) {
	require.False(t, domain.RequestStatusPending.IsTerminal())
	require.True(t, domain.RequestStatusFulfilled.IsTerminal())
	require.True(t, domain.RequestStatusCancelled.IsTerminal())
}

func TestParseApprovalStatus(t *testing.T) {
	for _, s := range []string{"UNVERIFIED", "APPROVED", "REJECTED"} {
		parsed, ok := domain.ParseApprovalStatus(s)
		require.True(t, ok)
		require.Equal(t, domain.ApprovalStatus(s), parsed)
	}

	_, ok := domain.ParseApprovalStatus("pending")
	require.False(t, ok)
}

func TestHospital_IsApproved(t *testing.T) {
	require.True(t, (&domain.Hospital{Status: domain.ApprovalStatusApproved}).IsApproved())
	require.False(t, (&domain.Hospital{Status: domain.ApprovalStatusUnverified}).IsApproved())
	require.False(t, (&domain.Hospital{Status: domain.ApprovalStatusRejected}).IsApproved())
}

func TestParseRole(t *testing.T) {
	role, ok := domain.ParseRole("hospital")
	require.True(t, ok)
	require.Equal(t, domain.RoleHospital, role)

	role, ok = domain.ParseRole("admin")
	require.True(t, ok)
	require.Equal(t, domain.RoleAdmin, role)

	_, ok = domain.ParseRole("donor")
	require.False(t, ok)
}

func TestIDJSONRoundTrip(t *testing.T) {
	id := domain.DonorID(uuid.New())

	data, err := json.Marshal(domain.Donor{ID: id})
	require.NoError(t, err)

	var decoded domain.Donor
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, id, decoded.ID)
}
