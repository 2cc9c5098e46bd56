/*
- @Author: aztec
- @Date: 2024-02-21 09:18:54
- @Description: 累积收益计算的配置参数
- @
- @Copyright (c) 2024 by aztec, All Rights Reserved.
*/
package backtest

// 累积收益计算配置
type CumConfig struct {
	// 资金拆成多少份。第k份资金在第k期入场，之后每隔Freq期调仓一次
	Funds int `json:"funds"`

	// 再调仓频率（期数）
	Freq int `json:"freq"`

	// 初始资金。每份资金分到InitCash/Funds
	InitCash float64 `json:"init_cash"`

	// 无风险收益率，作用在现金列上
	// 每期的毛收益，1.0表示现金无利息，日频计息可以用 1.0+0.025/250 这样的值
	RiskFree float64 `json:"risk_free"`
}

// 默认参数
func NewCumConfig() CumConfig {
	return CumConfig{Funds: 3, Freq: 3, InitCash: 1.0, RiskFree: 1.0}
}
