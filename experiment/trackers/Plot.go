package trackers

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PlotReturns renders the episodic returns of one or more training
// runs as an HTML line chart at the argument path. The series map
// names each run, e.g. by its goal key.
func PlotReturns(series map[string][]float64, path string) error {
	numEpisodes := 0
	for _, returns := range series {
		if len(returns) > numEpisodes {
			numEpisodes = len(returns)
		}
	}
	if numEpisodes == 0 {
		return fmt.Errorf("plotReturns: no data to plot")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Episodic return",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	var episodes []string
	for i := 0; i < numEpisodes; i++ {
		episodes = append(episodes, fmt.Sprintf("%d", i))
	}
	line = line.SetXAxis(episodes)

	for name, returns := range series {
		items := make([]opts.LineData, 0, len(returns))
		for _, ret := range returns {
			items = append(items, opts.LineData{Value: ret})
		}
		line.AddSeries(name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plotReturns: %v", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("plotReturns: could not render chart: %v", err)
	}
	return nil
}
