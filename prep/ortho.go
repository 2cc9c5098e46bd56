/*
- @Author: aztec
- @Date: 2024-03-05 09:12:57
- @Description: 对称正交化
- @
- @Copyright (c) 2024 by aztec, All Rights Reserved.
*/
package prep

import (
	"fmt"

	"github.com/aztecqt/qfactor/common"
	"gonum.org/v1/gonum/mat"
)

// SymmetricOrthogonal 对称正交化
// 对输入的对称矩阵做特征分解，特征向量按特征值从大到小重排，再QR分解取其正交矩阵
func SymmetricOrthogonal(m [][]float64) ([][]float64, error) {
	n := len(m)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty matrix", common.ErrShapeMismatch)
	}

	data := make([]float64, 0, n*n)
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", common.ErrShapeMismatch, i, len(row), n)
		}
		data = append(data, row...)
	}

	var eig mat.EigenSym
	if !eig.Factorize(mat.NewSymDense(n, data), true) {
		return nil, fmt.Errorf("%w: eigen decomposition failed", common.ErrInvalidParameter)
	}

	// gonum给出的特征值是升序的，倒序即为从大到小
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	order := make([]int, n)
	for i := range order {
		order[i] = n - 1 - i
	}

	sorted := mat.NewDense(n, n, nil)
	for j, src := range order {
		for i := 0; i < n; i++ {
			sorted.Set(i, j, vecs.At(i, src))
		}
	}

	var qr mat.QR
	qr.Factorize(sorted)
	var q mat.Dense
	qr.QTo(&q)

	out := make([][]float64, n)
	for i := range out {
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			row[j] = q.At(i, j)
		}
		out[i] = row
	}
	return out, nil
}
