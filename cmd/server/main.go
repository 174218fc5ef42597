package main

import "github.com/init-pkg/excel-users/internal/bootstrap"

func main() {
	bootstrap.Run()
}
