package calculator

import (
	"math"

	"ozzus/scicalc/internal/domain"
)

// Logger receives the calculator's log events. Implementations must not
// fail the caller; the calculator never reads anything back.
type Logger interface {
	Log(severity domain.Severity, message string, args ...any)
}

// Calculator validates operands and runs the fixed set of scientific
// operations. It holds no state besides its Logger and is safe for
// concurrent use when the Logger is.
type Calculator struct {
	log Logger
}

func New(log Logger) *Calculator {
	if log == nil {
		log = nopLogger{}
	}

	c := &Calculator{log: log}
	c.log.Log(domain.SeverityInfo, "calculator initialized")

	return c
}

// ValidateOperands fails with an INVALID_OPERAND error on the first value
// that is not an integer or floating-point number.
func (c *Calculator) ValidateOperands(values ...any) error {
	return validate("", values...)
}

func validate(op domain.Operation, values ...any) error {
	for _, v := range values {
		if _, ok := toFloat(v); !ok {
			return invalidOperandError(op, kindOf(v))
		}
	}
	return nil
}

// Calculate dispatches to the operation named by op. The operation name and
// operand count are checked before the operands themselves.
func (c *Calculator) Calculate(op domain.Operation, operands ...any) (float64, error) {
	if !op.Valid() {
		c.log.Log(domain.SeverityError, "unknown operation requested: %q", string(op))
		return 0, unknownOperationError(op)
	}

	if len(operands) != op.Arity() {
		c.log.Log(domain.SeverityError, "operation %s expects %d operand(s), received %d", op, op.Arity(), len(operands))
		return 0, arityError(op, len(operands))
	}

	switch op {
	case domain.OpAdd:
		return c.Add(operands[0], operands[1])
	case domain.OpSubtract:
		return c.Subtract(operands[0], operands[1])
	case domain.OpMultiply:
		return c.Multiply(operands[0], operands[1])
	case domain.OpDivide:
		return c.Divide(operands[0], operands[1])
	case domain.OpPower:
		return c.Power(operands[0], operands[1])
	case domain.OpSquareRoot:
		return c.SquareRoot(operands[0])
	case domain.OpNaturalLog:
		return c.NaturalLog(operands[0])
	case domain.OpLogBase10:
		return c.LogBase10(operands[0])
	case domain.OpSine:
		return c.Sine(operands[0])
	case domain.OpCosine:
		return c.Cosine(operands[0])
	case domain.OpTangent:
		return c.Tangent(operands[0])
	default:
		c.log.Log(domain.SeverityError, "unknown operation requested: %q", string(op))
		return 0, unknownOperationError(op)
	}
}

// Basic operations

func (c *Calculator) Add(a, b any) (float64, error) {
	x, y, err := binary(domain.OpAdd, a, b)
	if err != nil {
		return 0, err
	}

	c.log.Log(domain.SeverityInfo, "adding %s + %s", formatOperand(a), formatOperand(b))
	return x + y, nil
}

func (c *Calculator) Subtract(a, b any) (float64, error) {
	x, y, err := binary(domain.OpSubtract, a, b)
	if err != nil {
		return 0, err
	}

	c.log.Log(domain.SeverityInfo, "subtracting %s - %s", formatOperand(a), formatOperand(b))
	return x - y, nil
}

func (c *Calculator) Multiply(a, b any) (float64, error) {
	x, y, err := binary(domain.OpMultiply, a, b)
	if err != nil {
		return 0, err
	}

	c.log.Log(domain.SeverityInfo, "multiplying %s * %s", formatOperand(a), formatOperand(b))
	return x * y, nil
}

// Divide always performs floating-point division, integer operands included.
func (c *Calculator) Divide(a, b any) (float64, error) {
	x, y, err := binary(domain.OpDivide, a, b)
	if err != nil {
		return 0, err
	}

	c.log.Log(domain.SeverityInfo, "dividing %s / %s", formatOperand(a), formatOperand(b))

	if y == 0 {
		c.log.Log(domain.SeverityError, "attempted division by zero")
		return 0, divisionByZeroError()
	}

	return x / y, nil
}

// Advanced operations

func (c *Calculator) Power(base, exponent any) (float64, error) {
	x, y, err := binary(domain.OpPower, base, exponent)
	if err != nil {
		return 0, err
	}

	c.log.Log(domain.SeverityInfo, "calculating %s ^ %s", formatOperand(base), formatOperand(exponent))
	return math.Pow(x, y), nil
}

func (c *Calculator) SquareRoot(x any) (float64, error) {
	v, err := unary(domain.OpSquareRoot, x)
	if err != nil {
		return 0, err
	}

	c.log.Log(domain.SeverityInfo, "calculating square root of %s", formatOperand(x))

	if v < 0 {
		c.log.Log(domain.SeverityError, "attempted square root of negative number: %s", formatOperand(x))
		return 0, negativeDomainError(domain.OpSquareRoot)
	}

	return math.Sqrt(v), nil
}

func (c *Calculator) NaturalLog(x any) (float64, error) {
	v, err := unary(domain.OpNaturalLog, x)
	if err != nil {
		return 0, err
	}

	c.log.Log(domain.SeverityInfo, "calculating natural logarithm of %s", formatOperand(x))

	if v <= 0 {
		c.log.Log(domain.SeverityError, "attempted logarithm of non-positive number: %s", formatOperand(x))
		return 0, nonPositiveDomainError(domain.OpNaturalLog)
	}

	return math.Log(v), nil
}

func (c *Calculator) LogBase10(x any) (float64, error) {
	v, err := unary(domain.OpLogBase10, x)
	if err != nil {
		return 0, err
	}

	c.log.Log(domain.SeverityInfo, "calculating base-10 logarithm of %s", formatOperand(x))

	if v <= 0 {
		c.log.Log(domain.SeverityError, "attempted base-10 logarithm of non-positive number: %s", formatOperand(x))
		return 0, nonPositiveDomainError(domain.OpLogBase10)
	}

	return math.Log10(v), nil
}

// Trigonometric operations take angles in radians.

func (c *Calculator) Sine(angle any) (float64, error) {
	v, err := unary(domain.OpSine, angle)
	if err != nil {
		return 0, err
	}

	c.log.Log(domain.SeverityInfo, "calculating sine of %s radians", formatOperand(angle))
	return math.Sin(v), nil
}

func (c *Calculator) Cosine(angle any) (float64, error) {
	v, err := unary(domain.OpCosine, angle)
	if err != nil {
		return 0, err
	}

	c.log.Log(domain.SeverityInfo, "calculating cosine of %s radians", formatOperand(angle))
	return math.Cos(v), nil
}

func (c *Calculator) Tangent(angle any) (float64, error) {
	v, err := unary(domain.OpTangent, angle)
	if err != nil {
		return 0, err
	}

	c.log.Log(domain.SeverityInfo, "calculating tangent of %s radians", formatOperand(angle))
	return math.Tan(v), nil
}

func binary(op domain.Operation, a, b any) (float64, float64, error) {
	if err := validate(op, a, b); err != nil {
		return 0, 0, err
	}

	x, _ := toFloat(a)
	y, _ := toFloat(b)
	return x, y, nil
}

func unary(op domain.Operation, a any) (float64, error) {
	if err := validate(op, a); err != nil {
		return 0, err
	}

	x, _ := toFloat(a)
	return x, nil
}

type nopLogger struct{}

func (nopLogger) Log(domain.Severity, string, ...any) {}
