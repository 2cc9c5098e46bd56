/*
- @Author: aztec
- @Date: 2024-02-28 10:17:43
- @Description: 因子评估的测试
- @
- @Copyright (c) 2024 by aztec, All Rights Reserved.
*/
package evaluate

import (
	"math"
	"testing"
	"time"

	"github.com/aztecqt/qfactor/common"
)

var testInstIds = []string{"btc_usdt", "eth_usdt", "sol_usdt", "doge_usdt"}

func makeSections(rows [][]float64) []common.SectionData {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]common.SectionData, len(rows))
	for i, row := range rows {
		out[i] = common.SectionData{
			Time:    t0.AddDate(0, 0, i),
			InstIds: testInstIds,
			Values:  row,
		}
	}
	return out
}

func TestPreprocessForwardReturns(t *testing.T) {
	prices := makeSections([][]float64{
		{100, 10, 1, 50},
		{110, 9, 1, 50},
		{121, 8, 1, 50},
	})
	factors := makeSections([][]float64{
		{1, 2, 3, 4},
		{1, 2, 3, 4},
		{1, 2, 3, 4},
	})

	seq, ok, msg := Preprocess(factors, prices, PrepConfig{Quantiles: 2, Periods: []int{1}})
	if !ok {
		t.Fatal(msg)
	}

	// btc第0期的1期未来收益应为10%
	got := seq.Data[0].Details[0].ForwardReturns[0]
	if math.Abs(got-0.10) > 1e-12 {
		t.Fatalf("forward return: got %v, want 0.10", got)
	}

	// 最后一期算不出未来收益
	if !math.IsNaN(seq.Data[2].Details[0].ForwardReturns[0]) {
		t.Fatal("last section should have NaN forward return")
	}
}

func TestPreprocessQuantiles(t *testing.T) {
	prices := makeSections([][]float64{
		{100, 10, 1, 50},
		{100, 10, 1, 50},
	})
	factors := makeSections([][]float64{
		{4, 3, 2, 1},
		{1, math.NaN(), 3, 4},
	})

	seq, ok, msg := Preprocess(factors, prices, PrepConfig{Quantiles: 2, Periods: []int{1}})
	if !ok {
		t.Fatal(msg)
	}

	// 第0截面：因子值4,3,2,1 → 分位1,1,0,0
	wantQ := []int{1, 1, 0, 0}
	for j, d := range seq.Data[0].Details {
		if d.Quantile != wantQ[j] {
			t.Fatalf("inst %d: quantile %d, want %d", j, d.Quantile, wantQ[j])
		}
	}

	// 第1截面：缺失因子的品种分位为-1，其余正常分层
	if seq.Data[1].Details[1].Quantile != -1 {
		t.Fatalf("missing factor should get quantile -1, got %d", seq.Data[1].Details[1].Quantile)
	}
	if seq.Data[1].Details[0].Quantile != 0 || seq.Data[1].Details[3].Quantile != 1 {
		t.Fatalf("unexpected quantiles: %+v", seq.Data[1].Details)
	}
}

func TestPreprocessValidation(t *testing.T) {
	prices := makeSections([][]float64{{100, 10, 1, 50}})
	factors := makeSections([][]float64{{1, 2, 3, 4}, {1, 2, 3, 4}})

	if _, ok, _ := Preprocess(factors, prices, NewPrepConfig()); ok {
		t.Fatal("length mismatch should fail")
	}
	if _, ok, _ := Preprocess(nil, prices, NewPrepConfig()); ok {
		t.Fatal("empty factors should fail")
	}
	if _, ok, _ := Preprocess(factors[:1], prices, PrepConfig{Quantiles: 0, Periods: []int{1}}); ok {
		t.Fatal("non-positive quantiles should fail")
	}
}

func TestAnalysisIC(t *testing.T) {
	// 因子与未来收益完全同序 → IC=1
	prices := makeSections([][]float64{
		{100, 100, 100, 100},
		{101, 102, 103, 104},
	})
	factors := makeSections([][]float64{
		{1, 2, 3, 4},
		{1, 2, 3, 4},
	})

	seq, ok, msg := Preprocess(factors, prices, PrepConfig{Quantiles: 2, Periods: []int{1}})
	if !ok {
		t.Fatal(msg)
	}

	ars := Analysis(seq)
	if math.Abs(ars.Data[0].ICs[0]-1.0) > 1e-12 {
		t.Fatalf("IC: got %v, want 1.0", ars.Data[0].ICs[0])
	}

	// 最后一截面没有未来收益，IC为NaN
	if !math.IsNaN(ars.Data[1].ICs[0]) {
		t.Fatal("IC without forward returns should be NaN")
	}
}

func TestSpearmanTiesAndNaN(t *testing.T) {
	// 秩相关只看序不看值
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{10, 100, 1000, 10000, 100000}
	if math.Abs(spearman(x, y)-1.0) > 1e-12 {
		t.Fatalf("monotone series should give 1.0, got %v", spearman(x, y))
	}

	// 反序 → -1
	y2 := []float64{5, 4, 3, 2, 1}
	if math.Abs(spearman(x, y2)+1.0) > 1e-12 {
		t.Fatalf("reversed series should give -1.0, got %v", spearman(x, y2))
	}

	// NaN样本对剔除后不影响剩余样本的秩
	x3 := []float64{1, math.NaN(), 3, 4}
	y3 := []float64{2, 5, 6, 7}
	if math.Abs(spearman(x3, y3)-1.0) > 1e-12 {
		t.Fatalf("NaN pair should be dropped, got %v", spearman(x3, y3))
	}
}

func TestQuantileWeights(t *testing.T) {
	prices := makeSections([][]float64{
		{100, 10, 1, 50},
		{100, 10, 1, 50},
	})
	factors := makeSections([][]float64{
		{4, 3, 2, 1},
		{1, 2, 3, 4},
	})

	seq, ok, msg := Preprocess(factors, prices, PrepConfig{Quantiles: 2, Periods: []int{1}})
	if !ok {
		t.Fatal(msg)
	}

	ws, err := QuantileWeights(seq, 1)
	if err != nil {
		t.Fatal(err)
	}

	// 每行层内等权，权重和为1
	for i, row := range ws {
		sum := 0.0
		for _, w := range row {
			sum += w
		}
		if math.Abs(sum-1.0) > 1e-12 {
			t.Fatalf("row %d: weight sum %v", i, sum)
		}
	}
	// 第0截面做多的是因子值最大的前两个品种
	if ws[0][0] != 0.5 || ws[0][1] != 0.5 || ws[0][2] != 0 {
		t.Fatalf("unexpected weights: %v", ws[0])
	}

	if _, err := QuantileWeights(seq, 5); err == nil {
		t.Fatal("out-of-range quantile should fail")
	}
}

func TestLongShortWeights(t *testing.T) {
	prices := makeSections([][]float64{{100, 10, 1, 50}})
	factors := makeSections([][]float64{{4, 3, 2, 1}})

	seq, ok, msg := Preprocess(factors, prices, PrepConfig{Quantiles: 2, Periods: []int{1}})
	if !ok {
		t.Fatal(msg)
	}

	ws, err := LongShortWeights(seq)
	if err != nil {
		t.Fatal(err)
	}

	absSum, sum := 0.0, 0.0
	for _, w := range ws[0] {
		absSum += math.Abs(w)
		sum += w
	}
	if math.Abs(absSum-1.0) > 1e-12 {
		t.Fatalf("abs weight sum %v, want 1", absSum)
	}
	if math.Abs(sum) > 1e-12 {
		t.Fatalf("hedged weights should net to 0, got %v", sum)
	}
}

func TestShiftToExit(t *testing.T) {
	ws := [][]float64{{0.5, 0.5}, {1.0, 0.0}, {0.0, 1.0}}
	shifted, err := ShiftToExit(ws, 1)
	if err != nil {
		t.Fatal(err)
	}

	if !math.IsNaN(shifted[0][0]) || !math.IsNaN(shifted[0][1]) {
		t.Fatalf("leading rows should be NaN: %v", shifted[0])
	}
	if shifted[1][0] != 0.5 || shifted[2][0] != 1.0 {
		t.Fatalf("unexpected shift: %v", shifted)
	}

	if _, err := ShiftToExit(ws, -1); err == nil {
		t.Fatal("negative shift should fail")
	}
}
