/*
- @Author: aztec
- @Date: 2024-02-19 10:31:08
- @Description: 错误定义
- @
- @Copyright (c) 2024 by aztec, All Rights Reserved.
*/
package common

import "errors"

var (
	// 输入矩阵/序列形状不一致
	ErrShapeMismatch = errors.New("shape mismatch")

	// 参数非法。funds、freq、quantiles、topK等都必须为正数
	ErrInvalidParameter = errors.New("invalid parameter")
)
