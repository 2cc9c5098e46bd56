/*
- @Author: aztec
- @Date: 2024-02-21 10:40:26
- @Description: 单份资金的状态机
- @
- @Copyright (c) 2024 by aztec, All Rights Reserved.
*/
package backtest

// 一份资金的状态：当前净值、当前持仓权重行、下次调仓期
// 每期要么“调仓”（换成当期权重行），要么“持有”（沿用上次调仓时的权重行），
// 然后用当期收益行结算净值
type fundState struct {
	equity        float64
	held          []float64 // 持仓权重行，含现金列
	nextRebalance int
	freq          int
}

func newFundState(fundId int, cfg CumConfig, cols int) *fundState {
	// 入场前全部是现金，吃无风险收益
	held := make([]float64, cols)
	if cols > 0 {
		held[0] = 1.0
	}

	return &fundState{
		equity:        cfg.InitCash / float64(cfg.Funds),
		held:          held,
		nextRebalance: fundId,
		freq:          cfg.Freq,
	}
}

// 推进一期，返回期末净值
// weights/returns是已注入现金列并清洗过NaN的矩阵，状态机只读不写
func (f *fundState) step(t int, weights, returns [][]float64) float64 {
	if t == f.nextRebalance {
		f.held = weights[t]
		f.nextRebalance += f.freq
	}

	// 期收益 = Σ w_j * (r_j - 1)，现金列的r为无风险收益
	growth := 1.0
	row := returns[t]
	for j, w := range f.held {
		growth += w * (row[j] - 1)
	}

	f.equity *= growth
	return f.equity
}
