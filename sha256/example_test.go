package sha256_test

import (
	"fmt"

	"massnet.org/macsum/bitseq"
	"massnet.org/macsum/sha256"
)

func ExampleSumBytes() {
	sum := sha256.SumBytes([]byte("hello world\n"))
	fmt.Println(sum)
	// Output: a948904f2f0f479b8f8197694b30184b0d2ed1c1cd2a1ec0fb85d299a192a447
}

func ExampleEngine_Hash() {
	e := sha256.New()
	fmt.Println(e.Hash(bitseq.FromBytes([]byte("abc"))))
	// Output: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}
