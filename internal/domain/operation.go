package domain

// тип операции калькулятора

type Operation string

const (
	OpAdd        Operation = "add"
	OpSubtract   Operation = "subtract"
	OpMultiply   Operation = "multiply"
	OpDivide     Operation = "divide"
	OpPower      Operation = "power"
	OpSquareRoot Operation = "square_root"
	OpNaturalLog Operation = "natural_log"
	OpLogBase10  Operation = "log_base10"
	OpSine       Operation = "sine"
	OpCosine     Operation = "cosine"
	OpTangent    Operation = "tangent"
)

var operations = []Operation{
	OpAdd,
	OpSubtract,
	OpMultiply,
	OpDivide,
	OpPower,
	OpSquareRoot,
	OpNaturalLog,
	OpLogBase10,
	OpSine,
	OpCosine,
	OpTangent,
}

// Operations returns every supported operation in display order.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)
	return out
}

// Arity returns the number of operands the operation takes, or 0 for an
// unknown operation.
func (o Operation) Arity() int {
	switch o {
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower:
		return 2
	case OpSquareRoot, OpNaturalLog, OpLogBase10, OpSine, OpCosine, OpTangent:
		return 1
	}
	return 0
}

func (o Operation) Valid() bool {
	return o.Arity() > 0
}

// Список операций для API
type OperationInfo struct {
	Name  Operation `json:"name"`
	Arity int       `json:"arity"`
}
