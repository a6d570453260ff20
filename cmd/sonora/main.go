// Command sonora はバンド公式サイトのAPIサーバー。
//
// 使い方:
//
//	sonora [serve]        APIサーバーを起動する（デフォルト）
//	sonora check-content  コンテンツYAMLを検証して終了する
//	sonora healthcheck    稼働中のサーバーの /health を確認する
package main

import (
	"fmt"
	"os"

	"github.com/hitoshi/sonora/internal/app"
)

func main() {
	if err := app.Run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "sonora: %v\n", err)
		os.Exit(1)
	}
}
