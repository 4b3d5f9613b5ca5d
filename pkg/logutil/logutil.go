package logutil

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// Level 是日志级别，实现了 pflag.Value，可以直接绑定到 cobra 的 flag 上
type Level int

// 定义日志级别
const (
	DEBUG Level = iota // 0
	INFO               // 1
	WARN               // 2
	ERROR              // 3
)

// 定义日志级别映射字符串
var LOG_LEVELS = map[string]Level{
	"DEBUG": DEBUG,
	"INFO":  INFO,
	"WARN":  WARN,
	"ERROR": ERROR,
}

func (l *Level) String() string {
	for name, v := range LOG_LEVELS {
		if v == *l {
			return name
		}
	}
	return fmt.Sprintf("Level(%d)", int(*l))
}

func (l *Level) Set(val string) error {
	v, ok := ParseLevel(val)
	if !ok {
		return fmt.Errorf("无效的日志级别: %s (可选 DEBUG/INFO/WARN/ERROR)", val)
	}
	*l = v
	return nil
}

func (l *Level) Type() string {
	return "level"
}

// ParseLevel 不区分大小写地解析日志级别
func ParseLevel(s string) (Level, bool) {
	v, ok := LOG_LEVELS[strings.ToUpper(strings.TrimSpace(s))]
	return v, ok
}

var (
	logger       *log.Logger
	logFile      *os.File
	once         sync.Once
	mu           sync.Mutex
	currentLevel = INFO // 默认日志级别
)

// InitLogger 初始化日志，允许指定输出目标（stdout 或 文件）
func InitLogger(output string, level Level) {
	once.Do(func() {
		var err error
		if output == "stdout" || output == "" {
			logFile = os.Stdout
		} else {
			logFile, err = os.OpenFile(
				// 以追加模式打开日志文件，不会覆盖已有内容
				output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				log.Fatal("无法创建日志文件:", err)
			}
		}
		logger = log.New(logFile, "", log.LstdFlags)
		SetLogLevel(level)
	})
}

// SetOutput 把日志重定向到任意 writer，测试里用来捕获输出
func SetOutput(w io.Writer) {
	once.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", 0)
}

// logMessage 记录日志，**仅输出符合当前级别的日志**
func logMessage(level Level, msg string, args ...any) {
	if logger == nil {
		InitLogger("stdout", INFO) // 默认输出到控制台
	}
	mu.Lock()
	defer mu.Unlock()
	if level < currentLevel { // 值越小打印得越多
		return
	}
	_, file, line, _ := runtime.Caller(2) // 获取真正调用的文件+行号
	file = trimToProjectPath(file)

	var formattedArgs []any
	for _, arg := range args {
		v := reflect.ValueOf(arg)
		if v.Kind() == reflect.Ptr {
			v = v.Elem()
		}

		switch v.Kind() {
		case reflect.Struct:
			formattedArgs = append(formattedArgs, PrintStruct(arg, false))
		case reflect.Slice, reflect.Map:
			// parent/rank 这种数组直接压成一行 JSON，太长的日志不好看
			jsonData, err := json.Marshal(arg)
			if err != nil {
				formattedArgs = append(formattedArgs, fmt.Sprintf("无法格式化: %v", err))
			} else {
				formattedArgs = append(formattedArgs, string(jsonData))
			}
		default:
			formattedArgs = append(formattedArgs, arg)
		}
	}

	logger.Printf("[%s:%d] %s", file, line, fmt.Sprintf(msg, formattedArgs...))
}

const projectPrefix = "dsu_tool/"

func trimToProjectPath(file string) string {
	if idx := strings.Index(file, projectPrefix); idx >= 0 {
		return file[idx+len(projectPrefix):]
	}
	return file
}

// 设置日志级别
func SetLogLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
}

// Info 记录 INFO 日志
func Info(msg string, args ...any) {
	logMessage(INFO, "[INFO] "+msg, args...)
}

// Warn 记录 WARN 日志
func Warn(msg string, args ...any) {
	logMessage(WARN, "[WARN] "+msg, args...)
}

// Error 记录 ERROR 日志，顺带打印调用堆栈
func Error(msg string, args ...any) {
	size := 1024
	for {
		buf := make([]byte, size)
		n := runtime.Stack(buf, false)
		if n < size {
			// 堆栈里可能带 % 号，不能拼进格式串
			logMessage(ERROR, "[ERR] "+msg+"\n调用堆栈:\n%s", append(args, string(buf[:n]))...)
			return
		}
		// 扩展缓冲区大小，倍增策略
		size *= 2
	}
}

// Debug 记录 DEBUG 日志
func Debug(msg string, args ...any) {
	logMessage(DEBUG, "[DBG] "+msg, args...)
}

// 关闭日志文件（如果有的话）
func CloseLogger() error {
	if logFile != nil && logFile != os.Stdout {
		return logFile.Close()
	}
	return nil
}

// 递归格式化结构体信息
func formatStruct(s any, indent string) string {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fmt.Sprintf("%s非结构体类型: %#v\n", indent, v.Kind())
	}
	t := v.Type()

	var builder strings.Builder
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)

		if value.Kind() != reflect.Struct {
			builder.WriteString(fmt.Sprintf("%s%s: %#v\n", indent, field.Name, value))
			continue
		}
		// 嵌套结构体，先打印标头再递归
		builder.WriteString(fmt.Sprintf("%s%s:\n", indent, field.Name))
		if field.IsExported() {
			builder.WriteString(formatStruct(value.Interface(), indent+"    "))
		}
	}

	return builder.String()
}

// 打印结构体信息（支持控制是否输出到标准输出）
func PrintStruct(s any, printToStdout bool) string {
	result := formatStruct(s, "")
	if printToStdout {
		fmt.Print(result)
	}
	return result
}
