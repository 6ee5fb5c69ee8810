package hmac_test

import (
	"fmt"

	"massnet.org/macsum/bitseq"
	"massnet.org/macsum/hmac"
)

func ExampleCreateHex() {
	key, _ := bitseq.FromHex("4a656665")
	msg := bitseq.FromBytes([]byte("what do ya want for nothing?"))
	fmt.Println(hmac.CreateHex(msg, key))
	// Output: 5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843
}
