package config

import (
	"github.com/spf13/viper"
)

// Config 存储所有配置信息
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// 智能体 API 配置
	AgentAPIKey      string `mapstructure:"AGENT_API_KEY"`
	AgentAPIEndpoint string `mapstructure:"AGENT_API_ENDPOINT"`
	TaskAgentID      string `mapstructure:"TASK_AGENT_ID"`
	ReminderAgentID  string `mapstructure:"REMINDER_AGENT_ID"`

	// 提醒调度配置
	ScheduleID       string `mapstructure:"SCHEDULE_ID"`
	ReminderCron     string `mapstructure:"REMINDER_CRON"`
	ScheduleTimezone string `mapstructure:"SCHEDULE_TIMEZONE"`
}

// LoadConfig 从环境变量或配置文件加载配置
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("TASK_AGENT_ID", "69a0921c849533a5e9977933")
	viper.SetDefault("REMINDER_AGENT_ID", "69a0921d5fbdce87bf6e73e9")
	viper.SetDefault("SCHEDULE_ID", "69a0922625d4d77f732e739a")
	viper.SetDefault("REMINDER_CRON", "0 */2 * * *")
	viper.SetDefault("SCHEDULE_TIMEZONE", "UTC")

	err = viper.ReadInConfig()
	if err != nil {
		// 允许配置文件不存在，此时会从环境变量中读取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}
