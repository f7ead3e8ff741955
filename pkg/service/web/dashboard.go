package web

import (
	"html/template"
	"net/http"

	"github.com/passgauge/passgauge/pkg/events"
	"github.com/passgauge/passgauge/pkg/models"
	"github.com/passgauge/passgauge/pkg/storage"
	"github.com/sirupsen/logrus"
)

const recentCheckLimit = 25

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`
<html>
<head><title>Check Dashboard</title></head>
<body>
	<h1>Breach Checks</h1>
	<ul>
		<li>Total checks: {{.Stats.TotalChecks}}</li>
		<li>Breached: {{.Stats.BreachedChecks}}</li>
		<li>Clean: {{.Stats.CleanChecks}}</li>
		<li>Failed: {{.Stats.FailedChecks}}</li>
		<li>Unique hash prefixes: {{.Stats.UniquePrefixes}}</li>
	</ul>

	<h1>Recent Checks</h1>
	<table border="1" cellpadding="4">
		<tr><th>Time</th><th>Hash prefix</th><th>Outcome</th><th>Count</th></tr>
		{{range .Recent}}
			<tr>
				<td>{{.Timestamp.Format "2006-01-02 15:04:05"}}</td>
				<td>{{.HashPrefix}}</td>
				<td>{{.Outcome}}</td>
				<td>{{.Count}}</td>
			</tr>
		{{else}}
			<tr><td colspan="4">No checks recorded.</td></tr>
		{{end}}
	</table>
</body>
</html>
`))

type dashboardData struct {
	Stats  models.DashboardStats
	Recent []events.CheckEvent
}

func GetDashboard(logger *logrus.Logger, store storage.Driver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		stats, err := store.GetStats()
		if err != nil {
			logger.WithError(err).Error("error getting check stats")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		recent, err := store.GetRecentChecks(recentCheckLimit)
		if err != nil {
			logger.WithError(err).Error("error getting recent checks")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		data := dashboardData{
			Stats:  stats,
			Recent: recent,
		}

		w.Header().Set("Content-Type", "text/html")
		if err := dashboardTmpl.Execute(w, data); err != nil {
			logger.WithError(err).Error("error rendering template")
			http.Error(w, "Template Error", http.StatusInternalServerError)
		}
	}
}
