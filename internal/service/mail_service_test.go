package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMessage_Selected(t *testing.T) {
	for _, status := range []string{"selected", "Selected", "SELECTED"} {
		subject, body := StatusMessage("Jamie", "Backend Engineer", status, "Acme")
		assert.Equal(t, "Congratulations! Your Application Has Been Accepted", subject, "status=%s", status)
		assert.Contains(t, body, "Dear Jamie,")
		assert.Contains(t, body, "Backend Engineer position has been accepted")
		assert.Contains(t, body, "Acme HR Team")
	}
}

func TestStatusMessage_OtherStatuses(t *testing.T) {
	for _, status := range []string{"Rejected", "Pending", "On Hold"} {
		subject, body := StatusMessage("Jamie", "Backend Engineer", status, "Acme")
		assert.Equal(t, "Update on Your Application", subject, "status=%s", status)
		assert.Contains(t, body, "has not been selected")
		assert.Contains(t, body, "Backend Engineer position")
	}
}
