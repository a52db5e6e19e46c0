package evaluator

import "fmt"

// InvalidInputError 输入不合法（底牌数量、公共牌数量、点数越界、重复牌等）
type InvalidInputError string

func (e InvalidInputError) Error() string { return "invalid input: " + string(e) }

func errInvalidInput(format string, args ...any) error {
	return InvalidInputError(fmt.Sprintf(format, args...))
}
