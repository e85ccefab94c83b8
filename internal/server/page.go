package server

import "github.com/cleared-dev/balances/internal/pipeline"

type accountView struct {
	Name   string `json:"name"`
	Format string `json:"format"`
	Points int    `json:"points"`
	Last   string `json:"last,omitempty"`
	Error  string `json:"error,omitempty"`
}

type pageData struct {
	Title    string        `json:"title"`
	From     string        `json:"from,omitempty"`
	To       string        `json:"to,omitempty"`
	Total    string        `json:"total,omitempty"`
	Accounts []accountView `json:"accounts"`
	Error    string        `json:"error,omitempty"`
	HasChart bool          `json:"-"`
}

func newPageData(title string, res *pipeline.Result, err error) pageData {
	data := pageData{Title: title}
	if data.Title == "" {
		data.Title = "Account Balances"
	}
	switch {
	case err != nil && res != nil:
		// Per-account failures are listed in the table.
		data.Error = "no account could be loaded"
	case err != nil:
		data.Error = err.Error()
	}
	if res == nil {
		return data
	}
	for _, a := range res.Accounts {
		v := accountView{Name: a.Account.Name, Format: string(a.Account.Format)}
		if a.Err != nil {
			v.Error = a.Err.Error()
		} else {
			v.Points = len(a.Series.Points)
			v.Last = a.Series.Last().StringFixed(2)
		}
		data.Accounts = append(data.Accounts, v)
	}
	if err == nil {
		data.HasChart = true
		data.Total = res.Total.Last().StringFixed(2)
		if !res.Timeline.IsZero() {
			data.From = res.Timeline.Min().String()
			data.To = res.Timeline.Max().String()
		}
	}
	return data
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 1em; }
td, th { padding: 0.3em 0.8em; border-bottom: 1px solid #ddd; text-align: left; }
.err { color: #b00; }
img { max-width: 100%; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Error}}<p class="err">{{.Error}}</p>{{end}}
{{if .From}}<p>{{.From}} to {{.To}}, total {{.Total}}</p>{{end}}
<table>
<tr><th>Account</th><th>Format</th><th>Points</th><th>Balance</th></tr>
{{range .Accounts}}<tr><td>{{.Name}}</td><td>{{.Format}}</td>{{if .Error}}<td colspan="2" class="err">{{.Error}}</td>{{else}}<td>{{.Points}}</td><td>{{.Last}}</td>{{end}}</tr>
{{end}}</table>
{{if .HasChart}}<img src="/chart.svg" alt="{{.Title}}">
<p><a href="/chart.png">PNG</a> | <a href="/balances.csv">CSV</a></p>{{end}}
</body>
</html>
`
