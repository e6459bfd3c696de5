package leavehistory

import (
	"fmt"
	"time"
)

// Short month names of the id-ID locale.
var idMonths = [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// formatDate renders t like "5 Jan 2024".
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d %s %d", t.Day(), idMonths[t.Month()-1], t.Year())
}

func formatDuration(days int) string {
	return fmt.Sprintf("%d Hari", days)
}
