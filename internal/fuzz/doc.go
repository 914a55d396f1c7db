// Package fuzztests houses Go fuzz harnesses for the scanner and the
// evaluator. Их цель: убедиться, что на произвольном входе нет паник,
// зависаний и нарушений инвариантов токенов.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/eval, internal/diag,
// internal/testkit.
package fuzztests
