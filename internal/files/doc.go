// Package files groups the source-file handling sub-packages:
//   - filesystem: filesystem abstraction (OS and in-memory)
//   - scanner: discovery of .csv files and checksum calculation
//   - csvreader: parsing one file into a dataset
//
// # Usage
//
//	fileScanner := scanner.NewScanner(checksum.New())
//	result, err := fileScanner.ScanDirectory("./data")
//	...
//	file, err := fileScanner.ReadFile(result.Files[0])
//	ds, err := csvreader.NewReader().Read(file)
package files
