package main

import (
	"go.uber.org/fx"

	"instagrow/internal/app"
)

func main() {
	fx.New(app.Module).Run()
}
