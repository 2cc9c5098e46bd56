/*
- @Author: aztec
- @Date: 2024-02-19 11:05:37
- @Description: 截面序列与行主序矩阵之间的转换
- @
- @Copyright (c) 2024 by aztec, All Rights Reserved.
*/
package common

import (
	"fmt"
	"time"
)

// 将截面序列转换为行主序矩阵
// 一行对应一个时间截面，一列对应一个品种，缺失数据保留NaN
func SequenceToMatrix(s SectionSequence) ([][]float64, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: invalid section sequence", ErrShapeMismatch)
	}

	out := make([][]float64, len(s.Data))
	for i, sd := range s.Data {
		row := make([]float64, len(sd.Values))
		copy(row, sd.Values)
		out[i] = row
	}
	return out, nil
}

// 取出截面序列的时间轴
func SequenceTimes(s SectionSequence) []time.Time {
	out := make([]time.Time, len(s.Data))
	for i, sd := range s.Data {
		out[i] = sd.Time
	}
	return out
}

// 将行主序矩阵还原为截面序列
func MatrixToSequence(m [][]float64, times []time.Time, instIds []string) (SectionSequence, error) {
	if len(m) != len(times) {
		return SectionSequence{}, fmt.Errorf("%w: %d rows, %d times", ErrShapeMismatch, len(m), len(times))
	}

	seq := SectionSequence{InstIds: instIds}
	for i, row := range m {
		if len(row) != len(instIds) {
			return SectionSequence{}, fmt.Errorf("%w: row %d has %d columns, %d instIds", ErrShapeMismatch, i, len(row), len(instIds))
		}
		values := make([]float64, len(row))
		copy(values, row)
		seq.Data = append(seq.Data, SectionData{Time: times[i], InstIds: instIds, Values: values})
	}
	return seq, nil
}
