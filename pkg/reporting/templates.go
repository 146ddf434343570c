/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: templates.go
Description: Templates for corpus reports. The markdown template is the report
itself; the HTML template wraps goldmark's rendering of it in a styled page.
*/

package reporting

// markdownTemplate renders a Report as GitHub-flavoured markdown
const markdownTemplate = `# {{.Title}}

| Field | Value |
|---|---|
| Language | {{.Language}} |
| Session | ` + "`{{.SessionID}}`" + ` |
| Corpus | ` + "`{{.CorpusID}}`" + ` |
| Generated | {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}} |
| Samples (N) | {{.Stats.N}} |
| Alpha | {{.Alpha}} |
| Distinct strings | {{.Stats.Distinct}} |
| Mean length | {{printf "%.3f" .Stats.MeanLength}} |
| Max length | {{.Stats.MaxLength}} |
| Entropy (bits) | {{printf "%.4f" .Stats.Entropy}} |

## Most frequent strings

{{if .Top}}| Rank | String | Count | Frequency |
|---:|---|---:|---:|
{{range .Top}}| {{.Rank}} | {{cell .String}} | {{.Count}} | {{printf "%.4f" .Frequency}} |
{{end}}{{else}}_No strings were sampled._
{{end}}{{if .Canonical}}
## Canonical strings

The shortest members of the language in canonical order.

{{range .Canonical}}- {{cell .}}
{{end}}{{end}}{{if .Sampler}}
## Sampler

| Statistic | Value |
|---|---|
{{range .Sampler}}| {{.Key}} | {{.Value}} |
{{end}}{{end}}`

// pageTemplate is the HTML page around the rendered markdown
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            max-width: 960px;
            margin: 0 auto;
            padding: 20px;
            color: #333;
        }

        h1 {
            border-bottom: 2px solid #764ba2;
            padding-bottom: 8px;
        }

        table {
            border-collapse: collapse;
            margin: 16px 0;
        }

        th, td {
            border: 1px solid #ddd;
            padding: 6px 12px;
        }

        th {
            background: #f4f1f8;
        }

        code {
            background: #f6f8fa;
            padding: 1px 4px;
            border-radius: 3px;
        }
    </style>
</head>
<body>
{{.Body}}
</body>
</html>
`
