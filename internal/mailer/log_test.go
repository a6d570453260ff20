package mailer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestLogMailer_Deliver(t *testing.T) {
	var buf bytes.Buffer
	m := NewLogMailer(newTestLogger(&buf))

	receipt, err := m.Deliver(context.Background(), testEmail())
	if err != nil {
		t.Fatalf("Deliver がエラーを返した: %v", err)
	}
	if _, err := uuid.Parse(receipt.ID); err != nil {
		t.Errorf("ID %q はUUIDであるべき: %v", receipt.ID, err)
	}

	out := buf.String()
	for _, want := range []string{receipt.ID, "delivered@resend.dev", "Mensaje de Contacto: Gira"} {
		if !strings.Contains(out, want) {
			t.Errorf("ログに %q が含まれるべき: %s", want, out)
		}
	}
}

func TestLogMailer_Deliver_CancelledContext(t *testing.T) {
	var buf bytes.Buffer
	m := NewLogMailer(newTestLogger(&buf))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.Deliver(ctx, testEmail()); err == nil {
		t.Fatal("キャンセル済みコンテキストではエラーが返されるべき")
	}
}
