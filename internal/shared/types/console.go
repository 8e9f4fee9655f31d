package types

// Logger é o subconjunto de logging usado pelos casos de uso.
type Logger interface {
	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})
}

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Logger

	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	Status(message string) StatusHandle
	CreateTable() TableInterface
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}
