/*
- @Author: aztec
- @Date: 2024-03-04 10:08:15
- @Description: 按前缀/后缀选择因子列
- @
- @Copyright (c) 2024 by aztec, All Rights Reserved.
*/
package prep

import (
	"fmt"
	"strings"

	"github.com/aztecqt/qfactor/common"
	"github.com/go-gota/gota/dataframe"
)

// SelectBySuffix 选择指定后缀的所有列，并在列名中去掉该后缀
func SelectBySuffix(df dataframe.DataFrame, name string) (dataframe.DataFrame, error) {
	picked := []string{}
	for _, n := range df.Names() {
		if strings.HasSuffix(n, name) && len(n) > len(name) {
			picked = append(picked, n)
		}
	}
	if len(picked) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: no column with suffix %q", common.ErrInvalidParameter, name)
	}

	out := df.Select(picked)
	for _, n := range picked {
		out = out.Rename(strings.TrimSuffix(n, name), n)
	}
	return out, out.Error()
}

// SelectByPrefix 选择指定前缀的所有列，并在列名中去掉该前缀
func SelectByPrefix(df dataframe.DataFrame, name string) (dataframe.DataFrame, error) {
	picked := []string{}
	for _, n := range df.Names() {
		if strings.HasPrefix(n, name) && len(n) > len(name) {
			picked = append(picked, n)
		}
	}
	if len(picked) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: no column with prefix %q", common.ErrInvalidParameter, name)
	}

	out := df.Select(picked)
	for _, n := range picked {
		out = out.Rename(strings.TrimPrefix(n, name), n)
	}
	return out, out.Error()
}
