package types

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDocumentStatus_CanTransitionTo(t *testing.T) {
	c := qt.New(t)

	testCases := []struct {
		from DocumentStatus
		to   DocumentStatus
		want bool
	}{
		{DocumentStatusPending, DocumentStatusProcessing, true},
		{DocumentStatusReady, DocumentStatusProcessing, true},
		{DocumentStatusFailed, DocumentStatusProcessing, true},
		{DocumentStatusProcessing, DocumentStatusProcessing, true},
		{DocumentStatusProcessing, DocumentStatusReady, true},
		{DocumentStatusProcessing, DocumentStatusFailed, true},
		{DocumentStatusPending, DocumentStatusReady, false},
		{DocumentStatusPending, DocumentStatusFailed, false},
		{DocumentStatusReady, DocumentStatusFailed, true},
		{DocumentStatusFailed, DocumentStatusReady, true},
		{DocumentStatusProcessing, DocumentStatusPending, false},
		{DocumentStatus("archived"), DocumentStatusProcessing, false},
	}

	for _, tc := range testCases {
		c.Run(string(tc.from)+"->"+string(tc.to), func(c *qt.C) {
			c.Check(tc.from.CanTransitionTo(tc.to), qt.Equals, tc.want)
		})
	}
}

func TestDocumentStatus_IsTerminal(t *testing.T) {
	c := qt.New(t)

	c.Check(DocumentStatusReady.IsTerminal(), qt.IsTrue)
	c.Check(DocumentStatusFailed.IsTerminal(), qt.IsTrue)
	c.Check(DocumentStatusPending.IsTerminal(), qt.IsFalse)
	c.Check(DocumentStatusProcessing.IsTerminal(), qt.IsFalse)
}
