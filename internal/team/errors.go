package team

import "fmt"

// ExtractionError 文档字节无法转换为可用文本
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// RoleExecutionError 某个角色的生成调用失败，携带角色名便于定位
type RoleExecutionError struct {
	Role string
	Err  error
}

func (e *RoleExecutionError) Error() string {
	return fmt.Sprintf("role %s: %v", e.Role, e.Err)
}

func (e *RoleExecutionError) Unwrap() error { return e.Err }

// ConsolidationError 角色全部成功后，Manager 汇总步骤失败
type ConsolidationError struct {
	Err error
}

func (e *ConsolidationError) Error() string {
	return fmt.Sprintf("consolidate: %v", e.Err)
}

func (e *ConsolidationError) Unwrap() error { return e.Err }

// ConfigurationError 启动所需的凭证/配置缺失，进程启动时致命
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Key)
}
