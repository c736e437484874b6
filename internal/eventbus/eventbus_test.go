package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type ping struct{ n int }
type pong struct{}

func TestOnEmitUnsubscribe(t *testing.T) {
	b := New()
	var got []int
	unsubA := On(b, func(_ context.Context, p ping) { got = append(got, p.n) })
	On(b, func(_ context.Context, p ping) { got = append(got, p.n*10) })
	On(b, func(context.Context, pong) { t.Fatal("pong handler must not see ping") })

	Emit(context.Background(), b, ping{n: 1})
	unsubA()
	unsubA()
	Emit(context.Background(), b, ping{n: 2})
	require.Equal(t, []int{1, 10, 20}, got)
}

func TestGlobalBus(t *testing.T) {
	Use(nil)
	unsub := Subscribe(func(context.Context, ping) {})
	unsub()
	Publish(context.Background(), ping{})

	Use(New())
	t.Cleanup(func() { Use(nil) })
	var seen int
	Subscribe(func(_ context.Context, p ping) { seen = p.n })
	Publish(context.Background(), ping{n: 7})
	require.Equal(t, 7, seen)
}
