package biguint

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

// This is the equivalent of passing -biguint.randiter=5000 to 'go test':
const randDefaultIterations = 5000

// randMaxBits caps the bit length of operands produced by the randomised
// tests. Two operands this size multiply out to ~4096 bits, which is well
// past anything a single carry limb could cover.
const randMaxBits = 2048

var (
	randIterations = randDefaultIterations
	randSeed       int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	flag.IntVar(&randIterations, "biguint.randiter", randIterations, "Number of iterations for each randomised test")
	flag.Int64Var(&randSeed, "biguint.randseed", randSeed, "Seed the RNG (0 == current nanotime)")
	flag.Parse()

	if randSeed == 0 {
		randSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(randSeed))

	log.Println("rando seed:", randSeed) // classic rando!
	log.Println("iterations:", randIterations)
	log.Println("integer sz:", intSize)

	code := m.Run()
	os.Exit(code)
}

var big1 = new(big.Int).SetInt64(1)

func bigs(s string) *big.Int {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("biguint: test string %q invalid", s))
	}
	return b
}

func bigU64(u uint64) *big.Int { return new(big.Int).SetUint64(u) }

// us builds a U from a decimal or 0x-prefixed string through the big.Int
// path, so test fixtures don't depend on the parser under test.
func us(s string) U {
	u, ok := FromBigInt(bigs(s))
	if !ok {
		panic(fmt.Errorf("biguint: test string %q negative", s))
	}
	return u
}

func accUFromBigInt(b *big.Int) U {
	u, ok := FromBigInt(b)
	if !ok {
		panic(fmt.Errorf("biguint: negative conversion to U in randomised tester for %s", b))
	}
	return u
}

// randomBigU generates random operands with an even distribution of bit
// sizes; without pinning the top bit, nearly every draw would sit at the
// maximum width.
func randomBigU(rng *rand.Rand, maxBits int) *big.Int {
	if rng == nil {
		rng = globalRNG
	}

	var v = new(big.Int)
	bits := rng.Intn(maxBits+2) - 1 // +1 for "0 bits"
	if bits < 0 {
		return v // "-1 bits" == "0"
	}
	v.Rand(rng, new(big.Int).Lsh(big1, uint(bits)))
	v.SetBit(v, bits, 1)
	return v
}
