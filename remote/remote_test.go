package remote

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fabiovitalba/piston"
	"github.com/fabiovitalba/piston/source"
)

func serve(t *testing.T) (*source.ChannelSource, string) {
	t.Helper()
	src := source.NewChannelSource(8)
	srv := httptest.NewServer(NewHandler(src, log.New(io.Discard, "", 0)))
	t.Cleanup(srv.Close)
	return src, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func recv(t *testing.T, src *source.ChannelSource) piston.Input {
	t.Helper()
	select {
	case in := <-src.Inputs():
		return in
	case <-time.After(time.Second):
		t.Fatal("no input received")
		return nil
	}
}

func TestClientToHandler(t *testing.T) {
	src, url := serve(t)
	c, err := Dial(context.Background(), url)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	press := piston.PressArgs{Button: piston.MouseButtonOf(piston.MouseRight)}
	if err := c.Send(piston.Wrap(press)); err != nil {
		t.Fatal(err)
	}
	if got := recv(t, src); got != press {
		t.Errorf("got %v, want %v", got, press)
	}
}

func TestHandlerSkipsBadFrames(t *testing.T) {
	src, url := serve(t)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	frames := []string{
		`not json`,
		`{"kind":"teleport","args":{}}`,
		`{"kind":"update","args":{"dt":0.1}}`,
		`{"kind":"text","args":{"text":"ok"}}`,
	}
	for _, f := range frames {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
			t.Fatal(err)
		}
	}
	if got := recv(t, src); got != (piston.TextArgs{Text: "ok"}) {
		t.Errorf("got %v, want the only valid input", got)
	}
}

func TestClientClose(t *testing.T) {
	_, url := serve(t)
	c, err := Dial(context.Background(), url)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if err := c.Send(piston.CloseArgs{}); !errors.Is(err, ErrClosed) {
		t.Errorf("got %v, want ErrClosed", err)
	}
}

func TestDialFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := Dial(ctx, "ws://127.0.0.1:1/"); err == nil {
		t.Error("Dial to a closed port succeeded")
	}
}
