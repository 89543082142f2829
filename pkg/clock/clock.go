package clock

import "time"

// Clock 时间源抽象，由调用方注入，便于测试
type Clock interface {
	Now() time.Time
}

// Real 系统时钟
type Real struct{}

// Now 返回当前系统时间
func (Real) Now() time.Time { return time.Now() }

// Fixed 固定时间的时钟（测试用）
type Fixed time.Time

// Now 返回固定时间
func (f Fixed) Now() time.Time { return time.Time(f) }

// Func 适配普通函数为 Clock
type Func func() time.Time

// Now 调用底层函数
func (f Func) Now() time.Time { return f() }
