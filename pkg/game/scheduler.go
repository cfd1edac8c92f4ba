package game

import (
	"time"
)

// TimerID 定时任务标识，0 表示无效
type TimerID uint64

type scheduledTask struct {
	id  TimerID
	due float64 // 虚拟时钟上的触发时间（秒）
	fn  func()
}

// Scheduler 基于虚拟时钟的单线程定时器
//
// 时钟只在 Update 中按 deltaTime 前进，所有回调都在调用 Update 的
// goroutine（即 Ebitengine 主循环）上执行。测试中手动推进时钟即可
// 精确控制触发时机。
type Scheduler struct {
	now    float64
	nextID TimerID
	tasks  []*scheduledTask
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{nextID: 1}
}

// Now 返回虚拟时钟的当前时间（秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

// After 在 delay 之后执行 fn
// 返回: 可用于 Cancel 的 TimerID
func (s *Scheduler) After(delay time.Duration, fn func()) TimerID {
	id := s.nextID
	s.nextID++
	s.tasks = append(s.tasks, &scheduledTask{
		id:  id,
		due: s.now + delay.Seconds(),
		fn:  fn,
	})
	return id
}

// Cancel 取消尚未触发的任务
// 返回: 任务存在并被取消时为 true
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, task := range s.tasks {
		if task.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// IsPending 检查任务是否仍在等待
func (s *Scheduler) IsPending(id TimerID) bool {
	for _, task := range s.tasks {
		if task.id == id {
			return true
		}
	}
	return false
}

// Pending 返回等待中的任务数量
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Update 推进虚拟时钟并执行所有到期任务
// 到期任务按触发时间执行，时间相同时按创建顺序执行。
// 回调中新建的任务如果同样到期，会在本次 Update 中一并执行。
func (s *Scheduler) Update(deltaTime float64) {
	s.now += deltaTime

	for {
		idx := -1
		for i, task := range s.tasks {
			if task.due > s.now+1e-9 {
				continue
			}
			if idx < 0 || task.due < s.tasks[idx].due ||
				(task.due == s.tasks[idx].due && task.id < s.tasks[idx].id) {
				idx = i
			}
		}
		if idx < 0 {
			return
		}

		task := s.tasks[idx]
		s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
		task.fn()
	}
}
