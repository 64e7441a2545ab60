package services

import "errors"

// 生成管线的错误分类。除模板错误外，其余均在内部通过降级兜底消化，
// 不会向调用方传播。
var (
	ErrTemplateNotFound   = errors.New("prompt template not found")
	ErrBackendUnavailable = errors.New("no generation backend configured")
	ErrBackendCallFailed  = errors.New("generation backend call failed")
	ErrParseFailure       = errors.New("generation output does not match required contract")
)
