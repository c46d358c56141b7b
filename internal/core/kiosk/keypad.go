package kiosk

import "fmt"

// MaxKeypadDigits はテンキー入力の最大桁数です。
const MaxKeypadDigits = 10

// Keypad はテンキーで入力中の社員 ID です。
type Keypad struct {
	digits []byte
}

// Press は 1 桁追加します。上限を超える入力は黙って捨てます。
func (k *Keypad) Press(digit string) error {
	if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
		return fmt.Errorf("%q: %w", digit, ErrInvalidDigit)
	}
	if len(k.digits) >= MaxKeypadDigits {
		return nil
	}
	k.digits = append(k.digits, digit[0])
	return nil
}

// Backspace は末尾の 1 桁を削除します。
func (k *Keypad) Backspace() {
	if len(k.digits) > 0 {
		k.digits = k.digits[:len(k.digits)-1]
	}
}

// Clear は入力を全て消去します。
func (k *Keypad) Clear() {
	k.digits = k.digits[:0]
}

// Len は入力済みの桁数です。
func (k *Keypad) Len() int {
	return len(k.digits)
}

func (k *Keypad) String() string {
	return string(k.digits)
}
