/*
- @Author: aztec
- @Date: 2024-03-07 14:11:29
- @Description: 概要指标的测试
- @
- @Copyright (c) 2024 by aztec, All Rights Reserved.
*/
package report

import (
	"math"
	"strings"
	"testing"
)

func TestMaxDrawdown(t *testing.T) {
	curve := []float64{1.0, 1.2, 0.6, 0.9, 1.3}
	got := MaxDrawdown(curve)
	want := 0.6/1.2 - 1
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v, want %v", got, want)
	}

	// 单调上涨没有回撤
	if dd := MaxDrawdown([]float64{1, 2, 3}); dd != 0 {
		t.Fatalf("monotone curve should have 0 drawdown, got %v", dd)
	}
	if dd := MaxDrawdown(nil); dd != 0 {
		t.Fatalf("empty curve should have 0 drawdown, got %v", dd)
	}
}

func TestPeriodReturnsAndVariance(t *testing.T) {
	rets := PeriodReturns([]float64{1.0, 1.1, 0.99})
	if len(rets) != 2 {
		t.Fatalf("len %d", len(rets))
	}
	if math.Abs(rets[0]-0.1) > 1e-12 || math.Abs(rets[1]-(0.99/1.1-1)) > 1e-12 {
		t.Fatalf("unexpected returns: %v", rets)
	}

	// 平的曲线方差为0，波动的曲线方差更大
	flat := PeriodVariance([]float64{1, 1, 1, 1})
	wild := PeriodVariance([]float64{1, 1.3, 0.8, 1.2})
	if flat != 0 {
		t.Fatalf("flat variance %v", flat)
	}
	if wild <= flat {
		t.Fatalf("wild %v should exceed flat %v", wild, flat)
	}
}

func TestSharpe(t *testing.T) {
	// 恒定正收益 → +Inf
	if s := Sharpe([]float64{1, 2, 4}, 252); !math.IsInf(s, 1) {
		t.Fatalf("constant gain should give +Inf, got %v", s)
	}

	// 有波动时符号跟随均值
	s := Sharpe([]float64{1, 1.1, 1.05, 1.2}, 252)
	if s <= 0 {
		t.Fatalf("rising curve should have positive sharpe, got %v", s)
	}
}

func TestStats(t *testing.T) {
	s := Stats([]float64{1.0, 1.1, 1.21}, 252)
	if math.Abs(s.TotalReturn-0.21) > 1e-12 {
		t.Fatalf("total return %v", s.TotalReturn)
	}
	if math.Abs(s.MedianPeriodReturn-0.1) > 1e-9 {
		t.Fatalf("median %v", s.MedianPeriodReturn)
	}
	if s.MaxDrawdown != 0 {
		t.Fatalf("drawdown %v", s.MaxDrawdown)
	}
}

func TestTables(t *testing.T) {
	curves := [][]float64{
		{0.33, 0.33, 0.33},
		{0.35, 0.33, 0.34},
	}

	rendered := CurvesToTable(curves, 2).Render()
	if !strings.Contains(rendered, "fund0") || !strings.Contains(rendered, "more...") {
		t.Fatalf("unexpected table:\n%s", rendered)
	}

	rendered = StatsToTable(Stats([]float64{1, 1.1}, 252)).Render()
	if !strings.Contains(rendered, "total_return") {
		t.Fatalf("unexpected table:\n%s", rendered)
	}
}
