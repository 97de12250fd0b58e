package services

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"gpu-benchmark-scraper/models"
	"gpu-benchmark-scraper/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate summarises scored cards. TopByValue holds at most topN cards,
// best value first; equal scores keep dataset order.
func (s *InsightService) Generate(cards []models.ScoredGPU, topN int) *models.InsightReport {
	report := &models.InsightReport{}
	if len(cards) == 0 {
		return report
	}

	report.TotalCards = len(cards)

	ptrs := make([]*models.ScoredGPU, len(cards))
	for i := range cards {
		ptrs[i] = &cards[i]
	}

	report.MinPrice = cards[0].Price
	report.MaxPrice = cards[0].Price
	report.BestValue = ptrs[0]
	report.Fastest = ptrs[0]

	var total float64
	for _, c := range ptrs {
		total += c.Price
		if c.Price < report.MinPrice {
			report.MinPrice = c.Price
		}
		if c.Price > report.MaxPrice {
			report.MaxPrice = c.Price
		}
		if c.ValueScore > report.BestValue.ValueScore {
			report.BestValue = c
		}
		if c.Benchmark > report.Fastest.Benchmark {
			report.Fastest = c
		}
	}
	report.AveragePrice = round2(total / float64(len(cards)))
	report.MinPrice = round2(report.MinPrice)
	report.MaxPrice = round2(report.MaxPrice)

	sort.SliceStable(ptrs, func(i, j int) bool {
		return ptrs[i].ValueScore > ptrs[j].ValueScore
	})
	if topN >= 0 && len(ptrs) > topN {
		ptrs = ptrs[:topN]
	}
	report.TopByValue = ptrs

	s.logger.Debug("[insights] %d cards, best value: %s", report.TotalCards, report.BestValue.Name)
	return report
}

// Render formats the report as terminal tables.
func (s *InsightService) Render(r *models.InsightReport) string {
	var out strings.Builder

	summary := newTable()
	summary.SetTitle("GPU VALUE INSIGHTS")
	summary.AppendRow(table.Row{"Cards with a price", r.TotalCards})
	if r.TotalCards > 0 {
		summary.AppendRow(table.Row{"Average price", fmt.Sprintf("$%.2f", r.AveragePrice)})
		summary.AppendRow(table.Row{"Minimum price", fmt.Sprintf("$%.2f", r.MinPrice)})
		summary.AppendRow(table.Row{"Maximum price", fmt.Sprintf("$%.2f", r.MaxPrice)})
		summary.AppendRow(table.Row{"Best value", describe(r.BestValue)})
		summary.AppendRow(table.Row{"Fastest", describe(r.Fastest)})
	} else {
		summary.AppendRow(table.Row{"No data", ""})
	}
	out.WriteString(summary.Render())
	out.WriteString("\n")

	if len(r.TopByValue) == 0 {
		return out.String()
	}

	top := newTable()
	top.SetTitle(fmt.Sprintf("Top %d by value score", len(r.TopByValue)))
	top.AppendHeader(table.Row{"#", "Card", "Benchmark", "Price", "Value"})
	top.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	for i, c := range r.TopByValue {
		top.AppendRow(table.Row{
			i + 1,
			truncate(c.Name, 40),
			fmt.Sprintf("%.0f", c.Benchmark),
			fmt.Sprintf("$%.2f", c.Price),
			fmt.Sprintf("%.2f", c.ValueScore),
		})
	}
	out.WriteString(top.Render())
	out.WriteString("\n")
	return out.String()
}

func (s *InsightService) Print(r *models.InsightReport) {
	fmt.Fprint(os.Stdout, s.Render(r))
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

func describe(c *models.ScoredGPU) string {
	if c == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%.0f pts, $%.2f, %.2f pts/$)", c.Name, c.Benchmark, c.Price, c.ValueScore)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return text.Trim(s, max-3) + "..."
}
