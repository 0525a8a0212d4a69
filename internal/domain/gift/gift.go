package gift

import (
	"fmt"
	"io"
	"os"

	"github.com/xenking/order-management/internal/domain/customer"
)

// Message is announced when a Gift is opened.
const Message = "Congratulations! you got a new gift! Enjoy!"

var (
	_ customer.Gift = (*Gift)(nil)
	_ customer.Gift = Func(nil)
)

// Gift is the standard reward: opening it announces Message.
type Gift struct {
	out io.Writer
}

// New returns a Gift that announces on w, or on os.Stdout when w is nil.
func New(w io.Writer) *Gift {
	if w == nil {
		w = os.Stdout
	}
	return &Gift{out: w}
}

// OpenGift writes Message.
func (g *Gift) OpenGift() {
	fmt.Fprintln(g.out, Message)
}

// Func adapts an ordinary function to customer.Gift.
type Func func()

// OpenGift calls f.
func (f Func) OpenGift() { f() }
