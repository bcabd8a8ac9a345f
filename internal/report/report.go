package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"polybench/internal/bench"
	"polybench/internal/toolchain"
)

// Metadata supplies source-control context for the report header.
// Implementations fall back to "unknown" when no repository tooling is
// available, so the generator never fails over missing git.
type Metadata interface {
	Commit() string
	Branch() string
}

// StaticMetadata is a fixed Metadata, used in tests and as the fallback
// when no provider is wired.
type StaticMetadata struct {
	CommitValue string
	BranchValue string
}

func (m StaticMetadata) Commit() string { return m.CommitValue }
func (m StaticMetadata) Branch() string { return m.BranchValue }

// Generator renders benchmark documents to HTML. Now is injectable so
// rendering is deterministic under test.
type Generator struct {
	Meta Metadata
	Now  func() time.Time
}

func NewGenerator(meta Metadata) *Generator {
	if meta == nil {
		meta = StaticMetadata{CommitValue: "unknown", BranchValue: "unknown"}
	}
	return &Generator{Meta: meta, Now: time.Now}
}

// slowdownFactor is the ratio past which a cell is annotated with how
// many times slower than the fastest language it is.
const slowdownFactor = 10.0

type compareCell struct {
	Language string
	Value    string
	NA       bool
	Fastest  bool
	Slowdown string
}

type compareRow struct {
	Name  string
	Cells []compareCell
}

type trendRow struct {
	Key       string
	Mean      string
	Interval  string
	Indicator string
	Desc      string
	Class     TrendClass
}

type page struct {
	GeneratedAt string
	Commit      string
	Branch      string
	Iterations  string

	HasComparison bool
	Languages     []string
	Comparison    []compareRow

	HasTrends bool
	Trends    []trendRow
}

// Render produces the full HTML document. Either input may be absent
// (nil); only the corresponding section is dropped, never the whole
// report. Output is deterministic given identical inputs, clock, and
// metadata.
func (g *Generator) Render(doc *bench.Document, estimates map[string]Estimate) (string, error) {
	p := page{
		GeneratedAt: g.Now().Format("2006-01-02 15:04:05"),
		Commit:      g.Meta.Commit(),
		Branch:      g.Meta.Branch(),
		Iterations:  "100",
	}
	if doc != nil {
		p.Iterations = fmt.Sprintf("%d", doc.Iterations)
	}

	if doc != nil && len(doc.Benchmarks) > 0 {
		p.HasComparison = true
		for _, lang := range toolchain.Languages() {
			p.Languages = append(p.Languages, lang.Display())
		}
		for _, result := range doc.Benchmarks {
			p.Comparison = append(p.Comparison, buildCompareRow(result))
		}
	}

	if len(estimates) > 0 {
		p.HasTrends = true
		for _, key := range sortedKeys(estimates) {
			est := estimates[key]
			mean := est.Mean.PointEstimate
			// Placeholder baseline: the current mean scaled down by the
			// noise factor. A real deployment compares against the
			// persisted previous run instead.
			indicator, desc, class := Trend(mean, mean*0.95)
			p.Trends = append(p.Trends, trendRow{
				Key:       key,
				Mean:      formatNs(mean),
				Interval:  fmt.Sprintf("%s – %s", formatNs(est.Mean.LowerBound), formatNs(est.Mean.UpperBound)),
				Indicator: indicator,
				Desc:      desc,
				Class:     class,
			})
		}
	}

	var sb strings.Builder
	if err := reportTemplate.Execute(&sb, p); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return sb.String(), nil
}

func buildCompareRow(result bench.Result) compareRow {
	row := compareRow{Name: result.Name}
	fastestLang, fastestTiming, hasFastest := result.Fastest()

	for _, lang := range toolchain.Languages() {
		tm := result.Timing(lang)
		cell := compareCell{Language: lang.Display()}
		switch {
		case !tm.Usable():
			cell.NA = true
		case hasFastest && lang == fastestLang:
			cell.Fastest = true
			cell.Value = fmt.Sprintf("%.3f ms", tm.Millis())
		default:
			cell.Value = fmt.Sprintf("%.3f ms", tm.Millis())
			if hasFastest && tm.Millis() > fastestTiming.Millis()*slowdownFactor {
				cell.Slowdown = fmt.Sprintf("%.1fx", tm.Millis()/fastestTiming.Millis())
			}
		}
		row.Cells = append(row.Cells, cell)
	}
	return row
}

// WriteFile writes the rendered report, creating parent directories as
// needed. This is the one stage of the pipeline that auto-creates
// directories: reports usually land in a dedicated output tree.
func WriteFile(path, html string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>polybench report</title>
    <style>
        :root {
            --primary: #4CAF50;
            --regression: #f44336;
            --improvement: #4CAF50;
            --stable: #9E9E9E;
            --bg: #f5f5f5;
            --card-bg: #ffffff;
            --text: #333333;
            --text-light: #666666;
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg);
            color: var(--text);
            margin: 0;
            padding: 20px;
            line-height: 1.6;
        }
        .container { max-width: 1200px; margin: 0 auto; }
        h1 { color: var(--primary); border-bottom: 3px solid var(--primary); padding-bottom: 10px; }
        .card {
            background: var(--card-bg);
            border-radius: 8px;
            padding: 20px;
            margin: 20px 0;
            box-shadow: 0 2px 8px rgba(0,0,0,0.1);
        }
        .subtitle { color: var(--text-light); font-size: 0.9em; margin-top: -10px; }
        table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        th, td { padding: 12px 15px; text-align: left; border-bottom: 1px solid #eee; }
        th { background: var(--primary); color: white; font-weight: 600; }
        tr:hover { background: #f9f9f9; }
        .metric { font-family: 'SF Mono', Monaco, monospace; font-size: 0.95em; }
        .regression { color: var(--regression); }
        .improvement { color: var(--improvement); }
        .stable { color: var(--stable); }
        .neutral { color: var(--stable); }
        .slow { color: #ff9800; font-size: 0.85em; }
        .na { color: var(--text-light); font-style: italic; }
        .header-info {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 15px;
            margin-bottom: 30px;
        }
        .header-item {
            background: var(--card-bg);
            padding: 15px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.08);
        }
        .header-item .label { font-size: 0.85em; color: var(--text-light); }
        .header-item .value { font-size: 1.2em; font-weight: 600; color: var(--primary); }
        footer {
            margin-top: 40px;
            padding-top: 20px;
            border-top: 1px solid #ddd;
            color: var(--text-light);
            text-align: center;
            font-size: 0.9em;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>polybench report</h1>

        <div class="header-info">
            <div class="header-item">
                <div class="label">Generated</div>
                <div class="value">{{.GeneratedAt}}</div>
            </div>
            <div class="header-item">
                <div class="label">Commit</div>
                <div class="value">{{.Commit}}</div>
            </div>
            <div class="header-item">
                <div class="label">Branch</div>
                <div class="value">{{.Branch}}</div>
            </div>
            <div class="header-item">
                <div class="label">Iterations</div>
                <div class="value">{{.Iterations}}</div>
            </div>
        </div>

        {{if .HasComparison}}
        <div class="card">
            <h2>Language comparison</h2>
            <p class="subtitle">Per-iteration wall clock; fastest language in bold</p>
            <table>
                <thead>
                    <tr>
                        <th>Benchmark</th>
                        {{range .Languages}}<th>{{.}}</th>{{end}}
                    </tr>
                </thead>
                <tbody>
                    {{range .Comparison}}
                    <tr>
                        <td><strong>{{.Name}}</strong></td>
                        {{range .Cells}}
                        <td class="metric">
                            {{- if .NA}}<span class="na">N/A</span>
                            {{- else if .Fastest}}<strong>{{.Value}}</strong>
                            {{- else}}{{.Value}}{{if .Slowdown}} <span class="slow">({{.Slowdown}})</span>{{end}}
                            {{- end}}
                        </td>
                        {{end}}
                    </tr>
                    {{end}}
                </tbody>
            </table>
        </div>
        {{end}}

        {{if .HasTrends}}
        <div class="card">
            <h2>Performance trends</h2>
            <p class="subtitle">Historical estimates from the statistics engine</p>
            <table>
                <thead>
                    <tr>
                        <th>Benchmark</th>
                        <th>Mean</th>
                        <th>Confidence interval</th>
                        <th>Trend</th>
                    </tr>
                </thead>
                <tbody>
                    {{range .Trends}}
                    <tr>
                        <td>{{.Key}}</td>
                        <td class="metric"><strong>{{.Mean}}</strong></td>
                        <td class="metric">{{.Interval}}</td>
                        <td class="{{.Class}}">{{.Indicator}} {{.Desc}}</td>
                    </tr>
                    {{end}}
                </tbody>
            </table>
        </div>
        {{end}}

        <div class="card">
            <h2>Configuration</h2>
            <ul>
                <li><strong>Samples:</strong> {{.Iterations}} iterations</li>
                <li><strong>Confidence level:</strong> 95%</li>
                <li><strong>Noise threshold:</strong> 2%</li>
                <li><strong>Regression threshold:</strong> 5%</li>
            </ul>
        </div>

        <footer>
            <p>Generated by polybench</p>
        </footer>
    </div>
</body>
</html>
`))
