package chart

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
)

const pageHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Euribor Rates Chart</title>
    <script src="https://cdn.plot.ly/plotly-latest.min.js"></script>
    <style>
        #chart { width: 100%; height: 800px; }
    </style>
</head>
<body>
    <div id="chart"></div>
    <script>
        var data = {{.ChartData}};
        var layout = {
            title: "Euribor rates' {{.WindowDays}}-day forward realized cost (average interest rate)",
            showlegend: true,
            xaxis: {
                title: 'Date',
                type: 'date',
                rangeslider: {visible: true}
            },
            yaxis: {
                title: 'Interest rate (%)',
                dtick: 0.5
            },
            dragmode: 'zoom'
        };
        var config = {
            scrollZoom: true,
            modeBarButtonsToAdd: ['drawline', 'drawopenpath', 'drawclosedpath', 'drawcircle', 'drawrect', 'eraseshape']
        };

        Plotly.newPlot('chart', data, layout, config);
    </script>
</body>
</html>
`

var pageTmpl = template.Must(template.New("chart").Parse(pageHTML))

type pageData struct {
	ChartData  template.JS
	WindowDays int
}

// Render serializes the traces and writes a self-contained HTML document that
// draws the chart client-side with zoom, range slider and draw tools enabled.
func Render(w io.Writer, traces []Trace, windowDays int) error {
	data, err := json.Marshal(traces)
	if err != nil {
		return fmt.Errorf("marshal chart data: %w", err)
	}
	if err := pageTmpl.Execute(w, pageData{ChartData: template.JS(data), WindowDays: windowDays}); err != nil {
		return fmt.Errorf("execute chart template: %w", err)
	}
	return nil
}
