/*
- @Author: aztec
- @Date: 2024-03-04 11:31:02
- @Description: 一行值堆叠成矩阵
- @
- @Copyright (c) 2024 by aztec, All Rights Reserved.
*/
package prep

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/aztecqt/qfactor/common"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// RowUnstack 将一行扁平值堆叠成 index×columns 的矩阵
// row的长度必须等于 len(index)*len(columns)，按行主序填充
func RowUnstack(row []float64, index, columns []string) (dataframe.DataFrame, error) {
	if len(row) != len(index)*len(columns) {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %d values, %d index × %d columns",
			common.ErrShapeMismatch, len(row), len(index), len(columns))
	}

	ss := []series.Series{series.New(index, series.String, "index")}
	for c, name := range columns {
		col := make([]float64, len(index))
		for r := range index {
			col[r] = row[r*len(columns)+c]
		}
		ss = append(ss, series.New(col, series.Float, name))
	}

	df := dataframe.New(ss...)
	return df, df.Error()
}

// IndexSplitUnstack 将 "行键<splitBy>列键"->值 形式的扁平映射拆成矩阵
// 行列按键名排序，缺失的组合填NaN
func IndexSplitUnstack(values map[string]float64, splitBy string) (dataframe.DataFrame, error) {
	rowKeys := []string{}
	colKeys := []string{}
	cells := map[string]map[string]float64{}

	for k, v := range values {
		parts := strings.SplitN(k, splitBy, 2)
		if len(parts) != 2 {
			return dataframe.DataFrame{}, fmt.Errorf("%w: key %q has no separator %q", common.ErrInvalidParameter, k, splitBy)
		}
		r, c := parts[0], parts[1]
		if !slices.Contains(rowKeys, r) {
			rowKeys = append(rowKeys, r)
		}
		if !slices.Contains(colKeys, c) {
			colKeys = append(colKeys, c)
		}
		if cells[r] == nil {
			cells[r] = map[string]float64{}
		}
		cells[r][c] = v
	}
	slices.Sort(rowKeys)
	slices.Sort(colKeys)

	ss := []series.Series{series.New(rowKeys, series.String, "index")}
	for _, c := range colKeys {
		col := make([]float64, len(rowKeys))
		for i, r := range rowKeys {
			if v, ok := cells[r][c]; ok {
				col[i] = v
			} else {
				col[i] = math.NaN()
			}
		}
		ss = append(ss, series.New(col, series.Float, c))
	}

	df := dataframe.New(ss...)
	return df, df.Error()
}
