/*
- @Author: aztec
- @Date: 2024-03-01 14:22:40
- @Description: 行业哑元变量扩充
- @
- @Copyright (c) 2024 by aztec, All Rights Reserved.
*/
package prep

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// WithIndustry 添加行业哑元列
// 行业编号由浮点转为整数（缺失按0处理），再做drop_first的哑元展开：
// 原行业列被替换为 industry列名_编号 的0/1列
// 哑元展开丢弃哪个行业如果是随机的，行业中性化时会很不友好，这里固定丢弃编号最小的行业
func WithIndustry(df dataframe.DataFrame, industryName string) (dataframe.DataFrame, error) {
	values, err := floatColumn(df, industryName)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	// 行业处理，由浮点改成整数
	ids := make([]int, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			ids[i] = 0
		} else {
			ids[i] = int(v)
		}
	}

	distinct := []int{}
	for _, id := range ids {
		if !slices.Contains(distinct, id) {
			distinct = append(distinct, id)
		}
	}
	slices.Sort(distinct)

	// 去掉原行业列
	keep := []string{}
	for _, n := range df.Names() {
		if n != industryName {
			keep = append(keep, n)
		}
	}
	out := df.Select(keep)
	if out.Error() != nil {
		return dataframe.DataFrame{}, out.Error()
	}

	// drop_first：编号最小的行业不生成哑元列
	for _, id := range distinct[1:] {
		dummy := make([]int, len(ids))
		for i := range ids {
			if ids[i] == id {
				dummy[i] = 1
			}
		}
		out = out.Mutate(series.New(dummy, series.Int, fmt.Sprintf("%s_%d", industryName, id)))
		if out.Error() != nil {
			return dataframe.DataFrame{}, out.Error()
		}
	}

	return out, nil
}
