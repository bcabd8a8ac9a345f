package registry

import "polybench/internal/toolchain"

// Default returns the stock benchmark suite. Program bodies are fixture
// text, kept equivalent across languages by hand; the harness never
// inspects them.
func Default() *Registry {
	r := New()
	for _, def := range []Definition{
		{
			Name:        "fibonacci_iterative",
			Description: "Iterative Fibonacci (n=30, 1000 calls)",
			Sources: map[toolchain.Language]string{
				toolchain.Python: fibIterativePython,
				toolchain.Rust:   fibIterativeRust,
				toolchain.Cpp:    fibIterativeCpp,
				toolchain.Go:     fibIterativeGo,
			},
		},
		{
			Name:        "fibonacci_recursive",
			Description: "Recursive Fibonacci (n=20)",
			Sources: map[toolchain.Language]string{
				toolchain.Python: fibRecursivePython,
				toolchain.Rust:   fibRecursiveRust,
				toolchain.Cpp:    fibRecursiveCpp,
				toolchain.Go:     fibRecursiveGo,
			},
		},
		{
			Name:        "matrix_multiply",
			Description: "Matrix multiplication (20x20, 50 rounds)",
			Sources: map[toolchain.Language]string{
				toolchain.Python: matrixPython,
				toolchain.Rust:   matrixRust,
				toolchain.Cpp:    matrixCpp,
				toolchain.Go:     matrixGo,
			},
		},
		{
			Name:        "list_operations",
			Description: "List build and sum (1000 rounds)",
			Sources: map[toolchain.Language]string{
				toolchain.Python: listOpsPython,
				toolchain.Rust:   listOpsRust,
				toolchain.Cpp:    listOpsCpp,
				toolchain.Go:     listOpsGo,
			},
		},
		{
			Name:        "string_concat",
			Description: "String concatenation (1000 rounds)",
			Sources: map[toolchain.Language]string{
				toolchain.Python: stringConcatPython,
				toolchain.Rust:   stringConcatRust,
				toolchain.Cpp:    stringConcatCpp,
				toolchain.Go:     stringConcatGo,
			},
		},
	} {
		if err := r.Add(def); err != nil {
			// The stock suite is compiled-in data; a bad entry is a
			// programming error, not a runtime condition.
			panic(err)
		}
	}
	return r
}

const fibIterativePython = `
def fib(n):
    a, b = 0, 1
    for _ in range(n):
        a, b = b, a + b
    return a

for _ in range(1000):
    fib(30)
`

const fibIterativeRust = `
fn fib(n: u64) -> u64 {
    if n <= 1 { return n }
    let mut a: u64 = 0;
    let mut b: u64 = 1;
    for _ in 0..n {
        let temp = a;
        a = b;
        b = temp + b;
    }
    a
}

fn main() {
    for _ in 0..1000 {
        fib(30);
    }
}
`

const fibIterativeCpp = `
long long fib(int n) {
    if (n <= 1) return n;
    long long a = 0, b = 1;
    for (int i = 0; i < n; i++) {
        long long temp = a;
        a = b;
        b = temp + b;
    }
    return a;
}

int main() {
    for (int i = 0; i < 1000; i++) {
        fib(30);
    }
    return 0;
}
`

const fibIterativeGo = `
package main

func fib(n int) int {
    if n <= 1 {
        return n
    }
    a, b := 0, 1
    for i := 0; i < n; i++ {
        a, b = b, a+b
    }
    return a
}

var sink int

func main() {
    for i := 0; i < 1000; i++ {
        sink = fib(30)
    }
}
`

const fibRecursivePython = `
def fib(n):
    if n <= 1:
        return n
    return fib(n-1) + fib(n-2)

fib(20)
`

const fibRecursiveRust = `
fn fib(n: u64) -> u64 {
    if n <= 1 { n } else { fib(n-1) + fib(n-2) }
}

fn main() {
    fib(20);
}
`

const fibRecursiveCpp = `
int fib(int n) {
    if (n <= 1) return n;
    return fib(n-1) + fib(n-2);
}

int main() {
    fib(20);
    return 0;
}
`

const fibRecursiveGo = `
package main

func fib(n int) int {
    if n <= 1 {
        return n
    }
    return fib(n-1) + fib(n-2)
}

var sink int

func main() {
    sink = fib(20)
}
`

const matrixPython = `
def mat_mul(a, b):
    n = len(a)
    result = [[0] * n for _ in range(n)]
    for i in range(n):
        for j in range(n):
            s = 0
            for k in range(n):
                s += a[i][k] * b[k][j]
            result[i][j] = s
    return result

n = 20
a = [[i * j for j in range(n)] for i in range(n)]
b = [[i + j for j in range(n)] for i in range(n)]

for _ in range(50):
    mat_mul(a, b)
`

const matrixRust = `
fn mat_mul(a: &Vec<Vec<i64>>, b: &Vec<Vec<i64>>, n: usize) -> Vec<Vec<i64>> {
    let mut result = vec![vec![0i64; n]; n];
    for i in 0..n {
        for j in 0..n {
            let mut s = 0i64;
            for k in 0..n {
                s += a[i][k] * b[k][j];
            }
            result[i][j] = s;
        }
    }
    result
}

fn main() {
    let n = 20usize;
    let mut a = vec![vec![0i64; n]; n];
    let mut b = vec![vec![0i64; n]; n];
    for i in 0..n {
        for j in 0..n {
            a[i][j] = (i * j) as i64;
            b[i][j] = (i + j) as i64;
        }
    }
    for _ in 0..50 {
        mat_mul(&a, &b, n);
    }
}
`

const matrixCpp = `
#include <vector>
using namespace std;

vector<vector<long long>> mat_mul(const vector<vector<long long>>& a,
                                  const vector<vector<long long>>& b) {
    int n = a.size();
    vector<vector<long long>> result(n, vector<long long>(n, 0));
    for (int i = 0; i < n; i++) {
        for (int j = 0; j < n; j++) {
            long long s = 0;
            for (int k = 0; k < n; k++) {
                s += a[i][k] * b[k][j];
            }
            result[i][j] = s;
        }
    }
    return result;
}

int main() {
    int n = 20;
    vector<vector<long long>> a(n, vector<long long>(n));
    vector<vector<long long>> b(n, vector<long long>(n));
    for (int i = 0; i < n; i++) {
        for (int j = 0; j < n; j++) {
            a[i][j] = i * j;
            b[i][j] = i + j;
        }
    }
    for (int t = 0; t < 50; t++) {
        mat_mul(a, b);
    }
    return 0;
}
`

const matrixGo = `
package main

func matMul(a, b [][]int) [][]int {
    n := len(a)
    result := make([][]int, n)
    for i := 0; i < n; i++ {
        result[i] = make([]int, n)
        for j := 0; j < n; j++ {
            var s int
            for k := 0; k < n; k++ {
                s += a[i][k] * b[k][j]
            }
            result[i][j] = s
        }
    }
    return result
}

var sink [][]int

func main() {
    n := 20
    a := make([][]int, n)
    b := make([][]int, n)
    for i := 0; i < n; i++ {
        a[i] = make([]int, n)
        b[i] = make([]int, n)
        for j := 0; j < n; j++ {
            a[i][j] = i * j
            b[i][j] = i + j
        }
    }
    for t := 0; t < 50; t++ {
        sink = matMul(a, b)
    }
}
`

const listOpsPython = `
for _ in range(1000):
    lst = [i for i in range(100)]
    total = sum(lst)
`

const listOpsRust = `
fn main() {
    let mut sink = 0i64;
    for _ in 0..1000 {
        let lst: Vec<i64> = (0..100).collect();
        let total: i64 = lst.iter().sum();
        sink += total;
    }
    std::hint::black_box(sink);
}
`

const listOpsCpp = `
int main() {
    volatile long long sink = 0;
    for (int t = 0; t < 1000; t++) {
        int lst[100];
        long long total = 0;
        for (int i = 0; i < 100; i++) {
            lst[i] = i;
            total += lst[i];
        }
        sink += total;
    }
    return 0;
}
`

const listOpsGo = `
package main

var sink int

func main() {
    for t := 0; t < 1000; t++ {
        lst := make([]int, 100)
        var total int
        for i := 0; i < 100; i++ {
            lst[i] = i
            total += lst[i]
        }
        sink += total
    }
}
`

const stringConcatPython = `
for _ in range(1000):
    s = ""
    for i in range(100):
        s += str(i) + ","
`

const stringConcatRust = `
fn main() {
    for _ in 0..1000 {
        let mut s = String::new();
        for i in 0..100 {
            s.push_str(&i.to_string());
            s.push(',');
        }
        std::hint::black_box(&s);
    }
}
`

const stringConcatCpp = `
#include <string>
int main() {
    for (int t = 0; t < 1000; t++) {
        std::string s;
        for (int i = 0; i < 100; i++) {
            s += std::to_string(i);
            s += ",";
        }
    }
    return 0;
}
`

const stringConcatGo = `
package main

import "strconv"

var sink string

func main() {
    for t := 0; t < 1000; t++ {
        var s string
        for i := 0; i < 100; i++ {
            s += strconv.Itoa(i) + ","
        }
        sink = s
    }
}
`
