package drill

import (
	"github.com/idelarosa/subjunto/internal/screen"
	"github.com/idelarosa/subjunto/internal/screens/summary"
	sess "github.com/idelarosa/subjunto/internal/session"
)

// newSummaryScreenAdapter creates a summary screen from session data.
func newSummaryScreenAdapter(s *sess.Summary) screen.Screen {
	return summary.New(s)
}
