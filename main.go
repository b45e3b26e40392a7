package main

import (
	"github/monpay/wallet-bridge/cmd"
)

func main() {
	cmd.Execute()
}
