// Package inputs locates and reads puzzle input files. Inputs live next to the
// binary's working directory by default, one directory per year:
//
//	2023/inputdata/day1.txt
//	2023/inputdata/day1_test.txt
package inputs
